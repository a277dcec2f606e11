// Package httpapi is the demo HTTP façade over package puzzle: a
// thin external-request-layer stand-in. It deliberately carries none
// of the session/auth/persistence machinery a production deployment
// would need — just the three contracts (generate, feedback,
// filter_dictionary) routed over chi.
package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/ashgrove-labs/wordle-puzzle/logger"
	"github.com/ashgrove-labs/wordle-puzzle/models"
	"github.com/ashgrove-labs/wordle-puzzle/puzzle"
)

// Server bundles a chi router and the puzzle.Service it exposes.
type Server struct {
	r       *chi.Mux
	service *puzzle.Service
	log     *logger.Logger
}

// New constructs a Server, installs middleware, and registers routes.
func New(service *puzzle.Service, log *logger.Logger) *Server {
	s := &Server{r: chi.NewRouter(), service: service, log: log}

	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(s.requestID)
	s.r.Use(jsonContentType)

	s.r.Get("/health", s.handleHealth)
	s.r.Route("/api/v1", func(api chi.Router) {
		api.Post("/generate", s.handleGenerate)
		api.Post("/feedback", s.handleFeedback)
		api.Post("/filter", s.handleFilter)
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router, useful for tests.
func (s *Server) Router() chi.Router { return s.r }

func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)
		ctx := logger.WithContext(r.Context(), s.log.WithTag(id))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// generateRequest is the JSON body for POST /api/v1/generate.
// Answer is optional; when absent the service selects one.
type generateRequest struct {
	Answer      string `json:"answer,omitempty"`
	Seed        int64  `json:"seed"`
	MaxAttempts int    `json:"max_attempts,omitempty"`
}

type generateResponse struct {
	Answer              string               `json:"answer"`
	Guesses             []models.GuessRecord `json:"guesses"`
	RemainingCandidates int                  `json:"remaining_candidates"`
	Status              string               `json:"status"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("decoding generate request", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var answer *models.Word
	if req.Answer != "" {
		a, err := models.NewWord(req.Answer)
		if err != nil {
			writeError(w, http.StatusBadRequest, "answer must be five lowercase letters")
			return
		}
		answer = &a
	}

	puz, err := s.service.Generate(answer, req.Seed)
	if err != nil {
		log.Warn("generate failed", "error", err)
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{
		Answer:              puz.Answer.String(),
		Guesses:             puz.Guesses[:],
		RemainingCandidates: puz.RemainingCandidates,
		Status:              puz.Status().String(),
	})
}

type feedbackRequest struct {
	Guess  string `json:"guess"`
	Answer string `json:"answer"`
}

func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	guess, err := models.NewWord(req.Guess)
	if err != nil {
		writeError(w, http.StatusBadRequest, "guess must be five lowercase letters")
		return
	}
	answer, err := models.NewWord(req.Answer)
	if err != nil {
		writeError(w, http.StatusBadRequest, "answer must be five lowercase letters")
		return
	}

	pattern := s.service.Feedback(guess, answer)
	writeJSON(w, http.StatusOK, map[string]models.ColorPattern{"pattern": pattern})
}

type filterRequest struct {
	Records []models.GuessRecord `json:"records"`
}

func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	var req filterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	words := s.service.FilterDictionary(req.Records)
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.String()
	}
	writeJSON(w, http.StatusOK, map[string][]string{"candidates": out})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
