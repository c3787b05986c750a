package canvas

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"errors":[{"message":"Invalid access token."}]}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/v1/courses":
			w.Write([]byte(`[
				{"id": 1, "name": "Biology", "course_code": "BIO 101", "term": {"name": "Fall 2024"}},
				{"id": 42}
			]`))
		case "/api/v1/courses/1/assignments":
			w.Write([]byte(`[
				{"name": "Lab Report", "due_at": "2024-03-15T23:59:00Z"},
				{"name": "Reading", "due_at": null}
			]`))
		case "/api/v1/users/self":
			w.Write([]byte(`{"id": 7, "name": "Test Student"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"errors":[{"message":"Not found"}]}`))
		}
	}))
}

func TestListCourses(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	courses, err := New(srv.URL, "test-token").ListCourses()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []RawCourse{
		{ID: 1, Name: "Biology", CourseCode: "BIO 101"},
		{ID: 42},
	}
	expected[0].Term.Name = "Fall 2024"
	if !reflect.DeepEqual(courses, expected) {
		t.Errorf("Expected courses %+v, got %+v", expected, courses)
	}
}

func TestListAssignmentsNullDueDate(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	assignments, err := New(srv.URL, "test-token").ListAssignments(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []RawAssignment{
		{Name: "Lab Report", DueAt: "2024-03-15T23:59:00Z"},
		{Name: "Reading", DueAt: ""},
	}
	if !reflect.DeepEqual(assignments, expected) {
		t.Errorf("Expected assignments %+v, got %+v", expected, assignments)
	}
}

func TestGetCurrentUser(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	user, err := New(srv.URL, "test-token").GetCurrentUser()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != 7 || user.Name != "Test Student" {
		t.Errorf("Expected test user, got %+v", user)
	}
}

func TestBadTokenIsAnError(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	if _, err := New(srv.URL, "wrong-token").ListCourses(); err == nil {
		t.Error("Expected an error for a rejected token, got nil")
	}
}
