package aggregator

import (
	"time"

	"github.com/golang/glog"

	"canvascal/internal/cerrors"
	"canvascal/internal/fetcher"
)

// AllResponse is the combined payload served to the calendar client.
type AllResponse struct {
	Assignments []fetcher.Assignment `json:"assignments"`
	Schedule    []fetcher.Course     `json:"schedule"`
	Timestamp   string               `json:"timestamp"`
}

// ErrorShaper builds the JSON body returned when the whole fetch fails.
type ErrorShaper func(err error) map[string]interface{}

// PlaceholderShape reports the error alongside empty placeholder arrays, so
// display logic receives the same shape whether or not the fetch succeeded.
// This is the default.
func PlaceholderShape(err error) map[string]interface{} {
	return map[string]interface{}{
		"error":       err.Error(),
		"assignments": []fetcher.Assignment{},
		"schedule":    []fetcher.Course{},
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	}
}

// MinimalShape reports only the error message.
func MinimalShape(err error) map[string]interface{} {
	return map[string]interface{}{
		"error": err.Error(),
	}
}

// Service is the single aggregation entry point combining the windowed
// assignment fetch and the schedule listing.
type Service struct {
	client  fetcher.Client
	shaper  ErrorShaper
	nowFunc func() time.Time
}

// NewService creates the aggregation facade. A nil client means credentials
// were unavailable at startup; every GetAll then fails with
// NoCredentialsError instead of panicking.
func NewService(client fetcher.Client, shaper ErrorShaper) *Service {
	if shaper == nil {
		shaper = PlaceholderShape
	}
	return &Service{
		client:  client,
		shaper:  shaper,
		nowFunc: time.Now,
	}
}

// GetAll fetches the 10-week assignment window (no course filter) and the
// full course schedule. The two fetches fail independently: one failing is
// logged and degraded to an empty list, both failing is returned as an
// error for the caller to shape. An empty result set is a valid outcome,
// not an error.
func (s *Service) GetAll() (*AllResponse, error) {
	if s.client == nil {
		return nil, cerrors.NoCredentialsError
	}

	windowEnd := fetcher.WindowEnd(s.nowFunc())
	assignments, assignmentsErr := fetcher.FetchAssignments(s.client, windowEnd, nil)
	schedule, scheduleErr := fetcher.FetchCourses(s.client)

	if assignmentsErr != nil && scheduleErr != nil {
		return nil, assignmentsErr
	}
	if assignmentsErr != nil {
		glog.Errorf("assignments fetch failed, serving empty list: %v", assignmentsErr)
		assignments = []fetcher.Assignment{}
	}
	if scheduleErr != nil {
		glog.Errorf("schedule fetch failed, serving empty list: %v", scheduleErr)
		schedule = []fetcher.Course{}
	}

	return &AllResponse{
		Assignments: assignments,
		Schedule:    schedule,
		Timestamp:   s.nowFunc().UTC().Format(time.RFC3339),
	}, nil
}
