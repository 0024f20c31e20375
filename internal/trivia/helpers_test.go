package trivia

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// memStore is an in-memory Store used across the package tests. Writes are
// serialized behind the mutex the same way the Postgres store serializes
// them per statement.
type memStore struct {
	mu         sync.RWMutex
	categories []Category
	questions  []Question
	nextID     int
}

func newMemStore(categories []Category, questions []Question) *memStore {
	nextID := 1
	for _, q := range questions {
		if q.ID >= nextID {
			nextID = q.ID + 1
		}
	}
	return &memStore{
		categories: categories,
		questions:  questions,
		nextID:     nextID,
	}
}

func (m *memStore) ListQuestions(ctx context.Context) ([]Question, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Question, len(m.questions))
	copy(out, m.questions)
	return out, nil
}

func (m *memStore) ListQuestionsByCategory(ctx context.Context, categoryKey int) ([]Question, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Question
	for _, q := range m.questions {
		if q.Category == categoryKey {
			out = append(out, q)
		}
	}
	return out, nil
}

func (m *memStore) SearchQuestions(ctx context.Context, term string) ([]Question, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Question
	for _, q := range m.questions {
		if strings.Contains(strings.ToLower(q.Question), strings.ToLower(term)) {
			out = append(out, q)
		}
	}
	return out, nil
}

func (m *memStore) InsertQuestion(ctx context.Context, q NewQuestion) (Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	exists := false
	for _, c := range m.categories {
		if c.ID == q.Category {
			exists = true
			break
		}
	}
	if !exists {
		return Question{}, fmt.Errorf("category %d violates foreign key", q.Category)
	}
	created := Question{
		ID:         m.nextID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
	m.nextID++
	m.questions = append(m.questions, created)
	return created, nil
}

func (m *memStore) DeleteQuestion(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, q := range m.questions {
		if q.ID == id {
			m.questions = append(m.questions[:i], m.questions[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *memStore) ListCategories(ctx context.Context) ([]Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Category, len(m.categories))
	copy(out, m.categories)
	return out, nil
}

func (m *memStore) CategoryExists(ctx context.Context, categoryKey int) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.categories {
		if c.ID == categoryKey {
			return true, nil
		}
	}
	return false, nil
}

// memCategoryCache counts hits and misses for cache behavior assertions.
type memCategoryCache struct {
	mu         sync.Mutex
	categories []Category
	gets       int
	sets       int
}

func (c *memCategoryCache) Get(ctx context.Context) ([]Category, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	return c.categories, nil
}

func (c *memCategoryCache) Set(ctx context.Context, categories []Category) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.categories = categories
	return nil
}

func defaultCategories() []Category {
	return []Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 3, Type: "Geography"},
	}
}

func corpusOf(n int) []Question {
	questions := make([]Question, 0, n)
	for i := 1; i <= n; i++ {
		questions = append(questions, Question{
			ID:         i,
			Question:   fmt.Sprintf("Question %d", i),
			Answer:     fmt.Sprintf("Answer %d", i),
			Category:   i%3 + 1,
			Difficulty: i%5 + 1,
		})
	}
	return questions
}
