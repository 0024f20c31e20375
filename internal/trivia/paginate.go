package trivia

// Paginate slices an id-ordered question list into the 1-based page of the
// given size and reports the full match count. Out-of-range pages return an
// empty slice rather than an error so callers can render page controls off
// the total alone.
func Paginate(questions []Question, page, size int) ([]Question, int) {
	total := len(questions)
	if page < 1 || size < 1 {
		return nil, total
	}
	start := (page - 1) * size
	if start >= total {
		return nil, total
	}
	end := start + size
	if end > total {
		end = total
	}
	return questions[start:end], total
}
