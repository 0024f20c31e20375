package trivia

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(store Store, cache categoryCache) *Service {
	return NewService(store, cache, ServiceOptions{}, zerolog.Nop())
}

func TestListQuestionsPaginatesWithTotal(t *testing.T) {
	store := newMemStore(defaultCategories(), corpusOf(23))
	svc := newTestService(store, nil)

	page, err := svc.ListQuestions(context.Background(), 3)
	require.NoError(t, err)

	assert.Len(t, page.Questions, 3)
	assert.Equal(t, 21, page.Questions[0].ID)
	assert.Equal(t, 23, page.Total)
	assert.Len(t, page.Categories, 3)
}

func TestListQuestionsOutOfRangePageIsEmptySuccess(t *testing.T) {
	store := newMemStore(defaultCategories(), corpusOf(23))
	svc := newTestService(store, nil)

	page, err := svc.ListQuestions(context.Background(), 9)
	require.NoError(t, err)

	assert.Empty(t, page.Questions)
	assert.Equal(t, 23, page.Total)
}

func TestQuestionsByCategoryAppliesOrdinalOffset(t *testing.T) {
	store := newMemStore(defaultCategories(), []Question{
		{ID: 1, Question: "Q1", Answer: "A1", Category: 1, Difficulty: 1},
		{ID: 2, Question: "Q2", Answer: "A2", Category: 2, Difficulty: 1},
		{ID: 3, Question: "Q3", Answer: "A3", Category: 1, Difficulty: 1},
	})
	svc := newTestService(store, nil)

	page, err := svc.QuestionsByCategory(context.Background(), 0, 1)
	require.NoError(t, err)

	assert.Equal(t, 2, page.Total)
	for _, q := range page.Questions {
		assert.Equal(t, 1, q.Category)
	}
}

func TestQuestionsByCategoryUnknownOrdinalIsEmptySuccess(t *testing.T) {
	store := newMemStore(defaultCategories(), corpusOf(6))
	svc := newTestService(store, nil)

	page, err := svc.QuestionsByCategory(context.Background(), 41, 1)
	require.NoError(t, err)

	assert.Empty(t, page.Questions)
	assert.Zero(t, page.Total)
}

func TestSearchRejectsEmptyTerm(t *testing.T) {
	store := newMemStore(defaultCategories(), corpusOf(3))
	svc := newTestService(store, nil)

	_, _, err := svc.Search(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSearchMatchesCaseInsensitive(t *testing.T) {
	store := newMemStore(defaultCategories(), []Question{
		{ID: 1, Question: "What is the title of the book?", Answer: "A", Category: 1, Difficulty: 1},
		{ID: 2, Question: "Unrelated", Answer: "B", Category: 1, Difficulty: 1},
	})
	svc := newTestService(store, nil)

	results, total, err := svc.Search(context.Background(), "TITLE")
	require.NoError(t, err)

	assert.Equal(t, 1, total)
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].ID)
}

func TestCreateRejectsMissingAnswer(t *testing.T) {
	store := newMemStore(defaultCategories(), nil)
	svc := newTestService(store, nil)

	_, err := svc.Create(context.Background(), CreateQuestionInput{
		Question:   "Q",
		Answer:     "",
		Category:   0,
		Difficulty: 1,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateRejectsNonPositiveDifficulty(t *testing.T) {
	store := newMemStore(defaultCategories(), nil)
	svc := newTestService(store, nil)

	_, err := svc.Create(context.Background(), CreateQuestionInput{
		Question:   "Q",
		Answer:     "A",
		Category:   0,
		Difficulty: 0,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateRejectsUnknownCategory(t *testing.T) {
	store := newMemStore(defaultCategories(), nil)
	svc := newTestService(store, nil)

	_, err := svc.Create(context.Background(), CreateQuestionInput{
		Question:   "Q",
		Answer:     "A",
		Category:   17,
		Difficulty: 1,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateStoresOffsetCategoryKey(t *testing.T) {
	store := newMemStore(defaultCategories(), nil)
	svc := newTestService(store, nil)

	created, err := svc.Create(context.Background(), CreateQuestionInput{
		Question:   "What boxer's original name is Cassius Clay?",
		Answer:     "Muhammad Ali",
		Category:   0,
		Difficulty: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, created.ID)
	assert.Equal(t, 1, created.Category, "client ordinal 0 maps to stored key 1")
}

func TestDeleteMissingQuestionIsNotFound(t *testing.T) {
	store := newMemStore(defaultCategories(), nil)
	svc := newTestService(store, nil)

	err := svc.Delete(context.Background(), 99999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteRemovesFromListings(t *testing.T) {
	store := newMemStore(defaultCategories(), corpusOf(3))
	svc := newTestService(store, nil)

	require.NoError(t, svc.Delete(context.Background(), 2))

	page, err := svc.ListQuestions(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	for _, q := range page.Questions {
		assert.NotEqual(t, 2, q.ID)
	}
}

func TestCategoriesReadThroughCache(t *testing.T) {
	store := newMemStore(defaultCategories(), nil)
	cache := &memCategoryCache{}
	svc := newTestService(store, cache)

	first, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Len(t, first, 3)
	assert.Equal(t, 1, cache.sets, "miss should populate the cache")

	second, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.sets, "hit should not rewrite the cache")
	assert.Equal(t, 2, cache.gets)
}
