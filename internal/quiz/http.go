package quiz

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/trivia"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// scopeAll is the sentinel quiz_category type the client sends for an
// all-categories session.
const scopeAll = "click"

// HTTPHandlers exposes the quiz-advance endpoint.
type HTTPHandlers struct {
	selector *Selector
	logger   zerolog.Logger
}

func NewHTTPHandlers(selector *Selector, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		selector: selector,
		logger:   logger.With().Str("component", "quiz_http").Logger(),
	}
}

// HandlePlay advances a quiz session. The caller is the system of record for
// session state and resubmits its served-id history on every call; the
// response either carries the next question or, once the scope is exhausted,
// a bare success envelope with no question field.
// Route: POST /quizzes
func (h *HTTPHandlers) HandlePlay(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PreviousQuestions *[]int `json:"previous_questions"`
		QuizCategory      *struct {
			Type string `json:"type"`
			ID   int    `json:"id"`
		} `json:"quiz_category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httperrors.RespondUnprocessable(w)
		return
	}
	if body.PreviousQuestions == nil || body.QuizCategory == nil {
		httperrors.RespondUnprocessable(w)
		return
	}

	scope := Scope{All: body.QuizCategory.Type == scopeAll}
	if !scope.All {
		scope.CategoryKey = trivia.StoredKey(body.QuizCategory.ID)
	}

	result, err := h.selector.NextQuestion(r.Context(), scope, *body.PreviousQuestions)
	if err != nil {
		h.logger.Error().Err(err).Msg("quiz advance failed")
		httperrors.RespondUnprocessable(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if result.Complete {
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
		return
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":         true,
		"question":        trivia.Present(result.Question),
		"total_questions": result.Total,
	})
}
