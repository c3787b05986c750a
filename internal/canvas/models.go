package canvas

// RawCourse is a course record as Canvas returns it. Fields the API omits
// stay at their zero value; display fallbacks are applied at the fetcher
// boundary, not here.
type RawCourse struct {
	ID         int    `mapstructure:"id"`
	Name       string `mapstructure:"name"`
	CourseCode string `mapstructure:"course_code"`
	Term       struct {
		Name string `mapstructure:"name"`
	} `mapstructure:"term"`
}

// RawAssignment is an assignment record as Canvas returns it. DueAt is the
// raw ISO-8601 UTC string ("2006-01-02T15:04:05Z") or empty when the
// assignment has no due date.
type RawAssignment struct {
	Name  string `mapstructure:"name"`
	DueAt string `mapstructure:"due_at"`
}

// User identifies the authenticated Canvas user.
type User struct {
	ID   int    `mapstructure:"id"`
	Name string `mapstructure:"name"`
}
