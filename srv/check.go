package srv

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"sumpus.exe.dev/klon"
)

// maxSuggestions bounds autocomplete results.
const maxSuggestions = 5

// checkResponse is the JSON body of /check_rhyme.
type checkResponse struct {
	*klon.Report
	RequestID string `json:"request_id"`
}

// check runs the engine under the configured per-check deadline.
func (s *Server) check(ctx context.Context, text string) (*klon.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Config.CheckTimeout)
	defer cancel()
	return s.Engine.Check(ctx, text)
}

// HandleCheckRhyme checks the form field "text" and returns the report.
func (s *Server) HandleCheckRhyme(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.NewString()
	log := slog.With("request_id", reqID)

	r.Body = http.MaxBytesReader(w, r.Body, s.Config.MaxTextBytes)
	if err := r.ParseForm(); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "text too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	text := r.PostFormValue("text")
	if strings.TrimSpace(text) == "" {
		http.Error(w, "text is required", http.StatusBadRequest)
		return
	}

	report, err := s.check(r.Context(), text)
	if err != nil {
		log.Warn("check rhyme", "error", err)
		if errors.Is(err, context.DeadlineExceeded) {
			http.Error(w, "check timed out", http.StatusGatewayTimeout)
			return
		}
		http.Error(w, "check cancelled", http.StatusServiceUnavailable)
		return
	}
	log.Info("check rhyme",
		"verses", len(report.Verses),
		"syllables", report.SyllableCount,
		"failures", len(report.Failures),
		"seconds", report.ProcessingTime)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(checkResponse{Report: report, RequestID: reqID})
}

// suggest completes the last word of query with dictionary words that start with
// it, returning the whole query with each completion applied.
func (s *Server) suggest(query string) []string {
	out := []string{}
	if query == "" {
		return out
	}
	tokens := s.Tokenizer.Words(query)
	if len(tokens) == 0 {
		return out
	}
	last := tokens[len(tokens)-1]
	for _, word := range s.Completions.Prefix(last, maxSuggestions) {
		out = append(out, query+word[len(last):])
	}
	return out
}

// HandleAutocomplete returns up to five completions of the "query" parameter.
func (s *Server) HandleAutocomplete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.suggest(r.URL.Query().Get("query")))
}
