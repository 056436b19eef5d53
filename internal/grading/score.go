package grading

const (
	Subjects      = 5
	MaxPerSubject = 100
	MaxTotal      = Subjects * MaxPerSubject
)

// Score sums the marks and returns the percentage of MaxTotal rounded half
// away from zero to two decimals.
//
// The rounding is done on integer hundredths so totals such as 126 give
// exactly 25.2 and never 25.199999.
func Score(marks [Subjects]int) (total int, percentage float64) {
	for _, m := range marks {
		total += m
	}
	return total, float64(hundredths(total)) / 100
}

// hundredths returns round(total*100/MaxTotal, 2) scaled by 100.
func hundredths(total int) int64 {
	num := int64(total) * 100 * 100
	den := int64(MaxTotal)
	if num < 0 {
		return -((-num*2 + den) / (2 * den))
	}
	return (num*2 + den) / (2 * den)
}
