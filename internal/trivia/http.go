package trivia

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// HTTPHandlers exposes REST endpoints for the question catalog.
type HTTPHandlers struct {
	svc    *Service
	logger zerolog.Logger
}

func NewHTTPHandlers(svc *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		svc:    svc,
		logger: logger.With().Str("component", "trivia_http").Logger(),
	}
}

// HandleListCategories responds with every category label, ordered by stored
// key so the list index doubles as the client ordinal.
// Route: GET /categories
func (h *HTTPHandlers) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Categories(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("category listing failed")
		httperrors.RespondUnprocessable(w)
		return
	}

	writeJSON(w, map[string]interface{}{
		"success":          true,
		"categories":       categoryLabels(categories),
		"total_categories": len(categories),
	})
}

// HandleListQuestions responds with one page of the full question corpus.
// Route: GET /questions?page=N
func (h *HTTPHandlers) HandleListQuestions(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.ListQuestions(r.Context(), pageParam(r))
	if err != nil {
		h.logger.Error().Err(err).Msg("question listing failed")
		httperrors.RespondUnprocessable(w)
		return
	}
	writeQuestionPage(w, page)
}

// HandleCreateOrSearch multiplexes question creation and free-text search on
// body shape: a searchTerm searches, anything else is treated as a create.
// Route: POST /questions
func (h *HTTPHandlers) HandleCreateOrSearch(w http.ResponseWriter, r *http.Request) {
	var body struct {
		SearchTerm *string `json:"searchTerm"`
		Question   *string `json:"question"`
		Answer     *string `json:"answer"`
		Category   *int    `json:"category"`
		Difficulty *int    `json:"difficulty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httperrors.RespondBadRequest(w)
		return
	}

	if body.SearchTerm != nil {
		h.search(w, r, *body.SearchTerm)
		return
	}

	if body.Question == nil || body.Answer == nil || body.Category == nil || body.Difficulty == nil {
		httperrors.RespondBadRequest(w)
		return
	}
	h.create(w, r, CreateQuestionInput{
		Question:   *body.Question,
		Answer:     *body.Answer,
		Category:   *body.Category,
		Difficulty: *body.Difficulty,
	})
}

func (h *HTTPHandlers) search(w http.ResponseWriter, r *http.Request, term string) {
	questions, total, err := h.svc.Search(r.Context(), term)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			httperrors.RespondBadRequest(w)
			return
		}
		h.logger.Error().Err(err).Msg("question search failed")
		httperrors.RespondUnprocessable(w)
		return
	}

	writeJSON(w, map[string]interface{}{
		"success":         true,
		"questions":       questions,
		"total_questions": total,
	})
}

func (h *HTTPHandlers) create(w http.ResponseWriter, r *http.Request, input CreateQuestionInput) {
	if _, err := h.svc.Create(r.Context(), input); err != nil {
		if errors.Is(err, ErrValidation) {
			httperrors.RespondBadRequest(w)
			return
		}
		h.logger.Error().Err(err).Msg("question create failed")
		httperrors.RespondUnprocessable(w)
		return
	}

	// The original contract echoes the refreshed, unpaginated corpus after a
	// create so the client can jump to the last page.
	questions, total, err := h.svc.AllQuestions(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("post-create listing failed")
		httperrors.RespondUnprocessable(w)
		return
	}

	writeJSON(w, map[string]interface{}{
		"success":         true,
		"questions":       questions,
		"total_questions": total,
	})
}

// HandleDeleteQuestion removes a question permanently.
// Route: DELETE /questions/{id}
func (h *HTTPHandlers) HandleDeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			httperrors.RespondNotFound(w)
			return
		}
		h.logger.Error().Err(err).Int("question_id", id).Msg("question delete failed")
		httperrors.RespondUnprocessable(w)
		return
	}

	writeJSON(w, map[string]interface{}{
		"success":             true,
		"deleted_question_id": id,
	})
}

// HandleCategoryQuestions lists one category's questions. The path segment is
// the client ordinal; an ordinal matching no category yields an empty page.
// Route: GET /categories/{ordinal}/questions?page=N
func (h *HTTPHandlers) HandleCategoryQuestions(w http.ResponseWriter, r *http.Request) {
	ordinal, err := strconv.Atoi(r.PathValue("ordinal"))
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}

	page, err := h.svc.QuestionsByCategory(r.Context(), ordinal, pageParam(r))
	if err != nil {
		h.logger.Error().Err(err).Int("ordinal", ordinal).Msg("category question listing failed")
		httperrors.RespondUnprocessable(w)
		return
	}
	writeQuestionPage(w, page)
}

func pageParam(r *http.Request) int {
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			page = parsed
		}
	}
	return page
}

func categoryLabels(categories []Category) []string {
	labels := make([]string, 0, len(categories))
	for _, c := range categories {
		labels = append(labels, c.Type)
	}
	return labels
}

func writeQuestionPage(w http.ResponseWriter, page QuestionPage) {
	writeJSON(w, map[string]interface{}{
		"success":         true,
		"questions":       page.Questions,
		"total_questions": page.Total,
		"categories":      categoryLabels(page.Categories),
	})
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
