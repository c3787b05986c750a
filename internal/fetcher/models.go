package fetcher

import "time"

// Assignment is a coursework item with a known due date, tagged with its
// owning course's display name.
type Assignment struct {
	Name   string    `json:"name"`
	Course string    `json:"course"`
	DueAt  time.Time `json:"due_date"`
}

// Course is one entry of the schedule listing.
type Course struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
	Term string `json:"term"`
}
