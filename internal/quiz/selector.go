package quiz

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

// Scope narrows a quiz session to one category's questions, or to the whole
// corpus when All is set.
type Scope struct {
	All         bool
	CategoryKey int
}

// Result is one quiz-advance outcome. When Complete is set the scope is
// exhausted for the supplied history and Question is meaningless.
type Result struct {
	Question trivia.Question
	// Total is the eligible question count for the scope, served or not.
	Total    int
	Complete bool
}

// SelectorOptions configures randomness. A nil Rand uses the process-global
// generator; tests inject a seeded one.
type SelectorOptions struct {
	Rand *rand.Rand
}

// Selector computes quiz-session transitions. It keeps no session state:
// each call is a pure function of (scope, served history) over the current
// store contents, so concurrent sessions never coordinate.
type Selector struct {
	store  trivia.Store
	intN   func(n int) int
	logger zerolog.Logger
}

func NewSelector(store trivia.Store, opts SelectorOptions, logger zerolog.Logger) *Selector {
	intN := rand.IntN
	if opts.Rand != nil {
		intN = opts.Rand.IntN
	}
	return &Selector{
		store:  store,
		intN:   intN,
		logger: logger.With().Str("component", "quiz_selector").Logger(),
	}
}

// NextQuestion picks one question uniformly at random from the scope's
// questions not yet in served, or reports completion once every eligible
// question has been shown.
//
// Draws always span the full eligible range; ids already served are rejected
// and redrawn. A lone unseen candidate is returned directly so the rejection
// loop never has to find a needle the hard way.
func (s *Selector) NextQuestion(ctx context.Context, scope Scope, served []int) (Result, error) {
	var (
		eligible []trivia.Question
		err      error
	)
	if scope.All {
		eligible, err = s.store.ListQuestions(ctx)
	} else {
		eligible, err = s.store.ListQuestionsByCategory(ctx, scope.CategoryKey)
	}
	if err != nil {
		return Result{}, fmt.Errorf("load eligible questions: %w", err)
	}

	servedSet := make(map[int]struct{}, len(served))
	for _, id := range served {
		servedSet[id] = struct{}{}
	}

	var unseen []int
	for i, q := range eligible {
		if _, ok := servedSet[q.ID]; !ok {
			unseen = append(unseen, i)
		}
	}

	if len(unseen) == 0 {
		s.logger.Debug().Int("served", len(served)).Int("eligible", len(eligible)).Msg("quiz scope exhausted")
		return Result{Total: len(eligible), Complete: true}, nil
	}

	if len(unseen) == 1 {
		return Result{Question: eligible[unseen[0]], Total: len(eligible)}, nil
	}

	for {
		n := s.intN(len(eligible))
		if _, ok := servedSet[eligible[n].ID]; ok {
			continue
		}
		return Result{Question: eligible[n], Total: len(eligible)}, nil
	}
}
