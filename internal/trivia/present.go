package trivia

// QuestionView is the external response shape for a single question.
type QuestionView struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Present shapes a stored question into the response contract.
func Present(q Question) QuestionView {
	return QuestionView{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

// PresentAll formats a question list, preserving order.
func PresentAll(questions []Question) []QuestionView {
	views := make([]QuestionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, Present(q))
	}
	return views
}
