package fetcher

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/golang/glog"

	"canvascal/internal/canvas"
	"canvascal/internal/cerrors"
)

// Client is the slice of the Canvas API the fetcher needs.
type Client interface {
	ListCourses() ([]canvas.RawCourse, error)
	ListAssignments(courseID int) ([]canvas.RawAssignment, error)
}

// WindowWeeks is the rolling horizon assignments are fetched for.
const WindowWeeks = 10

const dueTimeLayout = "2006-01-02T15:04:05Z"

// WindowEnd returns the end of the fetch window anchored at now.
func WindowEnd(now time.Time) time.Time {
	return now.Add(WindowWeeks * 7 * 24 * time.Hour)
}

// FetchAssignments enumerates every visible course and collects assignments
// due at or before windowEnd, sorted ascending by due time. Assignments
// without a due date are dropped. When courseFilter is non-empty, only
// courses whose upper-cased name contains one of the targets are fetched.
//
// A failure on a single course is logged and that course skipped; the rest
// of the fetch proceeds. Only a failure to enumerate courses at all is
// returned as an error.
func FetchAssignments(client Client, windowEnd time.Time, courseFilter []string) ([]Assignment, error) {
	courses, err := client.ListCourses()
	if err != nil {
		glog.Errorf("listing courses: %v", err)
		return nil, fmt.Errorf("%w: %v", cerrors.RemoteFetchError, err)
	}

	assignments := []Assignment{}
	for _, course := range courses {
		name := courseDisplayName(course)
		if len(courseFilter) > 0 && !matchesFilter(name, courseFilter) {
			continue
		}

		raw, err := client.ListAssignments(course.ID)
		if err != nil {
			glog.Warningf("skipping course %q: %v", name, err)
			continue
		}

		for _, a := range raw {
			if a.DueAt == "" {
				continue
			}
			due, err := time.Parse(dueTimeLayout, a.DueAt)
			if err != nil {
				glog.Warningf("skipping assignment %q in %q: %v: %v", a.Name, name, cerrors.MalformedRecordError, err)
				continue
			}
			if due.After(windowEnd) {
				continue
			}
			assignments = append(assignments, Assignment{
				Name:   a.Name,
				Course: name,
				DueAt:  due,
			})
		}
	}

	// Stable keeps per-course enumeration order for equal due times.
	sort.SliceStable(assignments, func(i, j int) bool {
		return assignments[i].DueAt.Before(assignments[j].DueAt)
	})
	return assignments, nil
}

// FetchCourses lists all visible courses unconditionally, with absent fields
// defaulted. No date filtering applies here.
func FetchCourses(client Client) ([]Course, error) {
	raw, err := client.ListCourses()
	if err != nil {
		glog.Errorf("listing courses: %v", err)
		return nil, fmt.Errorf("%w: %v", cerrors.RemoteFetchError, err)
	}

	courses := make([]Course, 0, len(raw))
	for _, course := range raw {
		courses = append(courses, Course{
			ID:   course.ID,
			Name: courseDisplayName(course),
			Code: course.CourseCode,
			Term: course.Term.Name,
		})
	}
	return courses, nil
}

func courseDisplayName(course canvas.RawCourse) string {
	if course.Name != "" {
		return course.Name
	}
	return fmt.Sprintf("Course %d", course.ID)
}

// matchesFilter reports whether the upper-cased course name contains any of
// the targets. Substring match, not exact: "Intro to ECON 3: Microeconomics"
// matches target "ECON 3".
func matchesFilter(name string, targets []string) bool {
	upper := strings.ToUpper(name)
	for _, target := range targets {
		if strings.Contains(upper, strings.ToUpper(target)) {
			return true
		}
	}
	return false
}
