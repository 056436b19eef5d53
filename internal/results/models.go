package results

import "github.com/mind-engage/mindengage-marks/internal/grading"

// Form is the normalized submission: every value trimmed, absent fields empty.
type Form struct {
	Name  string                   `json:"name"`
	Marks [grading.Subjects]string `json:"marks"`
}

// Record is a submission that passed validation, with its scores attached.
type Record struct {
	Name       string                `json:"name"`
	Marks      [grading.Subjects]int `json:"marks"`
	Total      int                   `json:"total"`
	Percentage float64               `json:"percentage"`
}

// Row is a persisted record.
type Row struct {
	ID int64 `json:"id"`
	Record
}

// Summary is the projection shown in the recent saves table.
type Summary struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

type Result struct {
	Name       string  `json:"name"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// View is everything the page renderer needs for one response.
type View struct {
	Errors  []string  `json:"errors"`
	Form    Form      `json:"form"`
	Result  *Result   `json:"result,omitempty"`
	Failure string    `json:"failure,omitempty"`
	Recent  []Summary `json:"recent"`
}
