package trivia

import "context"

// Category is a stored trivia category. IDs are dense, 1-based, and assigned
// at data-load time; clients see the zero-based ordinal instead (category.go).
type Category struct {
	ID   int
	Type string
}

// Question is a stored trivia question. The category field holds the 1-based
// stored key of its Category.
type Question struct {
	ID         int
	Question   string
	Answer     string
	Category   int
	Difficulty int
}

// NewQuestion carries the fields required to insert a question. The repository
// assigns the ID.
type NewQuestion struct {
	Question   string
	Answer     string
	Category   int
	Difficulty int
}

// Store is the durable question/category collection. All listings are ordered
// by question id ascending. Implementations must allow concurrent reads and
// must never expose a partially written record.
type Store interface {
	ListQuestions(ctx context.Context) ([]Question, error)
	ListQuestionsByCategory(ctx context.Context, categoryKey int) ([]Question, error)
	SearchQuestions(ctx context.Context, term string) ([]Question, error)
	InsertQuestion(ctx context.Context, q NewQuestion) (Question, error)
	DeleteQuestion(ctx context.Context, id int) error
	ListCategories(ctx context.Context) ([]Category, error)
	CategoryExists(ctx context.Context, categoryKey int) (bool, error)
}
