package render

import (
	"embed"
	"html/template"
	"io"

	"github.com/mind-engage/mindengage-marks/internal/grading"
	"github.com/mind-engage/mindengage-marks/internal/results"
)

//go:embed templates/*
var files embed.FS

var page = template.Must(template.New("page.html").Funcs(template.FuncMap{
	"field": results.MarkField,
	"inc":   func(i int) int { return i + 1 },
}).ParseFS(files, "templates/page.html"))

type pageData struct {
	results.View
	MaxPerSubject int
	MaxTotal      int
}

// Stylesheet returns the page CSS, served as a file so the CSP can forbid
// inline styles.
func Stylesheet() []byte {
	b, _ := files.ReadFile("templates/page.css")
	return b
}

// Page writes the HTML document for v. Every dynamic value goes through
// html/template escaping.
func Page(w io.Writer, v results.View) error {
	return page.Execute(w, pageData{
		View:          v,
		MaxPerSubject: grading.MaxPerSubject,
		MaxTotal:      grading.MaxTotal,
	})
}
