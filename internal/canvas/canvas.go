package canvas

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mitchellh/mapstructure"
)

// Client is a minimal Canvas REST API client. All calls are synchronous and
// blocking; callers sequence them as needed.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a Canvas client for the given instance URL and access token.
// The URL is expected to already carry a scheme.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: http.DefaultClient,
	}
}

// ListCourses returns all courses visible to the authenticated user.
func (c *Client) ListCourses() ([]RawCourse, error) {
	var records []map[string]interface{}
	if err := c.getList("/api/v1/courses?include[]=term&per_page=100", &records); err != nil {
		return nil, err
	}

	courses := make([]RawCourse, 0, len(records))
	for _, record := range records {
		var course RawCourse
		if err := decode(record, &course); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, nil
}

// ListAssignments returns all assignments of a single course.
func (c *Client) ListAssignments(courseID int) ([]RawAssignment, error) {
	var records []map[string]interface{}
	path := fmt.Sprintf("/api/v1/courses/%d/assignments?per_page=100", courseID)
	if err := c.getList(path, &records); err != nil {
		return nil, err
	}

	assignments := make([]RawAssignment, 0, len(records))
	for _, record := range records {
		var assignment RawAssignment
		if err := decode(record, &assignment); err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
	}
	return assignments, nil
}

// GetCurrentUser returns the identity the token authenticates as. Used as a
// connection check before the first real fetch.
func (c *Client) GetCurrentUser() (*User, error) {
	resp, err := c.get("/api/v1/users/self")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var record map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, fmt.Errorf("decoding user: %w", err)
	}

	var user User
	if err := decode(record, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) getList(path string, out *[]map[string]interface{}) error {
	resp, err := c.get(path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response from %s: %w", path, err)
	}
	return nil
}

func (c *Client) get(path string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("canvas returned %s for %s", resp.Status, path)
	}
	return resp, nil
}

// decode maps a loosely-shaped Canvas record onto a typed struct. Weak
// typing lets JSON numbers land in int fields; missing fields stay at their
// zero value instead of faulting.
func decode(record map[string]interface{}, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(record)
}
