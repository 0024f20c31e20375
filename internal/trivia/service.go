package trivia

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// categoryCache is implemented by the Redis-backed CategoryCache. A nil cache
// is allowed; the service then always reads categories from the store.
type categoryCache interface {
	Get(ctx context.Context) ([]Category, error)
	Set(ctx context.Context, categories []Category) error
}

// QuestionPage is one page of questions plus the data listing endpoints embed
// alongside it.
type QuestionPage struct {
	Questions  []QuestionView
	Total      int
	Categories []Category
}

// CreateQuestionInput carries caller-supplied fields for a new question.
// Category is the client-visible zero-based ordinal.
type CreateQuestionInput struct {
	Question   string
	Answer     string
	Category   int
	Difficulty int
}

// ServiceOptions tunes listing behavior.
type ServiceOptions struct {
	// PageSize is the fixed listing page size. Defaults to 10.
	PageSize int
}

// Service orchestrates question listing, search, and mutation over the store.
type Service struct {
	store    Store
	cache    categoryCache
	pageSize int
	logger   zerolog.Logger
}

func NewService(store Store, cache categoryCache, opts ServiceOptions, logger zerolog.Logger) *Service {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Service{
		store:    store,
		cache:    cache,
		pageSize: pageSize,
		logger:   logger.With().Str("component", "trivia_service").Logger(),
	}
}

// PageSize reports the configured listing page size.
func (s *Service) PageSize() int {
	return s.pageSize
}

// Categories returns all categories ordered by stored key, read through the
// cache when one is configured.
func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx); err == nil && cached != nil {
			return cached, nil
		} else if err != nil {
			s.logger.Warn().Err(err).Msg("category cache read failed")
		}
	}

	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, categories); err != nil {
			s.logger.Warn().Err(err).Msg("category cache write failed")
		}
	}
	return categories, nil
}

// ListQuestions returns the requested 1-based page over the full id-ordered
// corpus, with the unpaginated total and the category list.
func (s *Service) ListQuestions(ctx context.Context, page int) (QuestionPage, error) {
	questions, err := s.store.ListQuestions(ctx)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("list questions: %w", err)
	}
	return s.buildPage(ctx, questions, page)
}

// QuestionsByCategory lists questions for the category identified by its
// client ordinal. An ordinal with no matching category yields an empty page,
// not an error.
func (s *Service) QuestionsByCategory(ctx context.Context, clientOrdinal, page int) (QuestionPage, error) {
	questions, err := s.store.ListQuestionsByCategory(ctx, StoredKey(clientOrdinal))
	if err != nil {
		return QuestionPage{}, fmt.Errorf("list questions by category: %w", err)
	}
	return s.buildPage(ctx, questions, page)
}

// AllQuestions returns the whole id-ordered corpus unpaginated, with its
// count. Used after a create to echo the refreshed list.
func (s *Service) AllQuestions(ctx context.Context) ([]QuestionView, int, error) {
	questions, err := s.store.ListQuestions(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list questions: %w", err)
	}
	return PresentAll(questions), len(questions), nil
}

// Search returns every question whose text contains the term,
// case-insensitive, unpaginated. An empty term is rejected.
func (s *Service) Search(ctx context.Context, term string) ([]QuestionView, int, error) {
	if strings.TrimSpace(term) == "" {
		return nil, 0, fmt.Errorf("search term required: %w", ErrValidation)
	}
	questions, err := s.store.SearchQuestions(ctx, term)
	if err != nil {
		return nil, 0, fmt.Errorf("search questions: %w", err)
	}
	return PresentAll(questions), len(questions), nil
}

// Create validates and inserts a new question. The category ordinal must
// resolve to an existing category.
func (s *Service) Create(ctx context.Context, input CreateQuestionInput) (Question, error) {
	if strings.TrimSpace(input.Question) == "" {
		return Question{}, fmt.Errorf("question text required: %w", ErrValidation)
	}
	if strings.TrimSpace(input.Answer) == "" {
		return Question{}, fmt.Errorf("answer text required: %w", ErrValidation)
	}
	if input.Difficulty < 1 {
		return Question{}, fmt.Errorf("difficulty must be positive: %w", ErrValidation)
	}

	categoryKey := StoredKey(input.Category)
	exists, err := s.store.CategoryExists(ctx, categoryKey)
	if err != nil {
		return Question{}, fmt.Errorf("resolve category: %w", err)
	}
	if !exists {
		return Question{}, fmt.Errorf("category %d does not exist: %w", input.Category, ErrValidation)
	}

	created, err := s.store.InsertQuestion(ctx, NewQuestion{
		Question:   input.Question,
		Answer:     input.Answer,
		Category:   categoryKey,
		Difficulty: input.Difficulty,
	})
	if err != nil {
		return Question{}, fmt.Errorf("insert question: %w", err)
	}

	s.logger.Info().Int("question_id", created.ID).Int("category", created.Category).Msg("question created")
	return created, nil
}

// Delete removes a question permanently. Missing ids surface ErrNotFound.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.store.DeleteQuestion(ctx, id); err != nil {
		return fmt.Errorf("delete question %d: %w", id, err)
	}
	s.logger.Info().Int("question_id", id).Msg("question deleted")
	return nil
}

func (s *Service) buildPage(ctx context.Context, questions []Question, page int) (QuestionPage, error) {
	if page < 1 {
		page = 1
	}
	pageItems, total := Paginate(questions, page, s.pageSize)

	categories, err := s.Categories(ctx)
	if err != nil {
		return QuestionPage{}, err
	}

	return QuestionPage{
		Questions:  PresentAll(pageItems),
		Total:      total,
		Categories: categories,
	}, nil
}
