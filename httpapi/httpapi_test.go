package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ashgrove-labs/wordle-puzzle/logger"
	"github.com/ashgrove-labs/wordle-puzzle/models"
	"github.com/ashgrove-labs/wordle-puzzle/puzzle"
	"github.com/ashgrove-labs/wordle-puzzle/search"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	words := []string{
		"plant", "crane", "slate", "trace", "grape", "shake",
		"spend", "briny", "clout", "dwarf", "mourn", "lathe",
	}
	ws := make([]models.Word, len(words))
	for i, w := range words {
		ws[i] = models.MustWord(w)
	}
	dict, err := models.NewDictionary(ws)
	if err != nil {
		t.Fatalf("NewDictionary: %v", err)
	}
	cfg := search.DefaultConfig()
	cfg.MaxAttempts = 20
	service := puzzle.NewService(dict, models.EmptyFrequencyTable(), cfg)
	return New(service, logger.New())
}

func TestHealthEndpoint(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestFeedbackEndpoint(t *testing.T) {
	s := testServer(t)
	body, _ := json.Marshal(feedbackRequest{Guess: "crane", Answer: "slate"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/feedback", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", rec.Code, rec.Body.String())
	}

	var resp map[string][5]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if _, ok := resp["pattern"]; !ok {
		t.Fatalf("expected a pattern field in response, got %v", resp)
	}
}

func TestFeedbackEndpointRejectsBadWord(t *testing.T) {
	s := testServer(t)
	body, _ := json.Marshal(feedbackRequest{Guess: "bad", Answer: "slate"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/feedback", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestFilterEndpoint(t *testing.T) {
	s := testServer(t)
	req := filterRequest{Records: []models.GuessRecord{
		{
			Guess: models.MustWord("crane"),
			Pattern: models.ColorPattern{
				models.Gray, models.Gray, models.Gray, models.Gray, models.Gray,
			},
		},
	}}
	body, _ := json.Marshal(req)
	httpReq := httptest.NewRequest(http.MethodPost, "/api/v1/filter", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httpReq)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", rec.Code, rec.Body.String())
	}

	var resp map[string][]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	for _, w := range resp["candidates"] {
		if w == "crane" {
			t.Errorf("crane should have been excluded by its own all-gray pattern")
		}
	}
}

func TestGenerateEndpointWithExplicitAnswer(t *testing.T) {
	s := testServer(t)
	body, _ := json.Marshal(generateRequest{Answer: "plant", Seed: 5})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", rec.Code, rec.Body.String())
	}

	var resp generateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if resp.Answer != "plant" {
		t.Errorf("Answer = %q, want plant", resp.Answer)
	}
	if len(resp.Guesses) != 4 {
		t.Errorf("len(Guesses) = %d, want 4", len(resp.Guesses))
	}
}
