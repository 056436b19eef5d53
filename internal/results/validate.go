package results

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/mind-engage/mindengage-marks/internal/grading"
)

var namePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z\s.'-]{1,49}$`)

const msgName = "Name: letters/spaces/.'- only, 2–50 chars."

// Validate checks every field of f and reports all violations at once,
// name first and then subjects in order. The returned Record is only
// meaningful when the message list is empty.
func Validate(f Form) (Record, []string) {
	var errs []string
	rec := Record{Name: f.Name}

	if !namePattern.MatchString(f.Name) {
		errs = append(errs, msgName)
	}

	for i, raw := range f.Marks {
		if !isDigits(raw) {
			errs = append(errs, fmt.Sprintf("Subject %d: enter an integer 0–100.", i+1))
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 || v > grading.MaxPerSubject {
			// digits only, so a parse error can only mean overflow
			errs = append(errs, fmt.Sprintf("Subject %d must be 0–100.", i+1))
			continue
		}
		rec.Marks[i] = v
	}

	if len(errs) > 0 {
		return Record{}, errs
	}
	rec.Total, rec.Percentage = grading.Score(rec.Marks)
	return rec, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
