package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

// QuestionRepository is the Postgres-backed trivia.Store. Every statement is
// a single round trip, so readers see pre- or post-write state, never a
// half-written row.
type QuestionRepository struct {
	pool *pgxpool.Pool
}

var _ trivia.Store = (*QuestionRepository)(nil)

func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

// ListQuestions returns the full corpus ordered by id ascending.
func (r *QuestionRepository) ListQuestions(ctx context.Context) ([]trivia.Question, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, question, answer, category_id, difficulty FROM questions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	return scanQuestions(rows)
}

// ListQuestionsByCategory filters by stored category key, ordered by id. A
// key matching nothing yields an empty slice.
func (r *QuestionRepository) ListQuestionsByCategory(ctx context.Context, categoryKey int) ([]trivia.Question, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, question, answer, category_id, difficulty FROM questions
		 WHERE category_id = $1 ORDER BY id`, categoryKey)
	if err != nil {
		return nil, fmt.Errorf("query questions by category: %w", err)
	}
	return scanQuestions(rows)
}

// SearchQuestions returns questions whose text contains the term,
// case-insensitive, ordered by id.
func (r *QuestionRepository) SearchQuestions(ctx context.Context, term string) ([]trivia.Question, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, question, answer, category_id, difficulty FROM questions
		 WHERE question ILIKE '%' || $1 || '%' ORDER BY id`, term)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return scanQuestions(rows)
}

// InsertQuestion persists a new question and returns it with the assigned id.
func (r *QuestionRepository) InsertQuestion(ctx context.Context, q trivia.NewQuestion) (trivia.Question, error) {
	var id int
	err := r.pool.QueryRow(ctx,
		`INSERT INTO questions (question, answer, category_id, difficulty)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		q.Question, q.Answer, q.Category, q.Difficulty).Scan(&id)
	if err != nil {
		return trivia.Question{}, fmt.Errorf("insert question: %w", err)
	}
	return trivia.Question{
		ID:         id,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}, nil
}

// DeleteQuestion removes a question row, reporting trivia.ErrNotFound when
// the id does not exist.
func (r *QuestionRepository) DeleteQuestion(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return trivia.ErrNotFound
	}
	return nil
}

// ListCategories returns all categories ordered by stored key.
func (r *QuestionRepository) ListCategories(ctx context.Context) ([]trivia.Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, type FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var categories []trivia.Category
	for rows.Next() {
		var c trivia.Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// CategoryExists reports whether a stored category key resolves.
func (r *QuestionRepository) CategoryExists(ctx context.Context, categoryKey int) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`, categoryKey).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check category: %w", err)
	}
	return exists, nil
}

func scanQuestions(rows pgx.Rows) ([]trivia.Question, error) {
	defer rows.Close()

	var questions []trivia.Question
	for rows.Next() {
		var q trivia.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}
