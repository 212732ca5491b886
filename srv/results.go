package srv

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"sumpus.exe.dev/db"
)

// recentResults is how many results the listing returns.
const recentResults = 20

// HandleSaveResult checks the posted poem, stores the result and returns its ID.
// The report is always recomputed here; clients cannot submit their own.
func (s *Server) HandleSaveResult(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title string `json:"title"`
		Text  string `json:"text"`
	}
	r.Body = http.MaxBytesReader(w, r.Body, s.Config.MaxTextBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		http.Error(w, "text is required", http.StatusBadRequest)
		return
	}

	report, err := s.check(r.Context(), req.Text)
	if err != nil {
		slog.Warn("save result: check", "error", err)
		http.Error(w, "check failed", http.StatusServiceUnavailable)
		return
	}
	result := &db.CheckResult{
		Title:  strings.TrimSpace(req.Title),
		Text:   req.Text,
		Report: report,
	}
	if err := s.Results.Save(r.Context(), result); err != nil {
		slog.Error("save result", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	slog.Info("result saved", "id", result.ID, "failures", result.Failures)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"id": result.ID})
}

// HandleListResults returns the newest saved results without their reports.
func (s *Server) HandleListResults(w http.ResponseWriter, r *http.Request) {
	results, err := s.Results.Recent(r.Context(), recentResults)
	if err != nil {
		slog.Error("list results", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if results == nil {
		results = []db.CheckResult{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(results)
}

// loadResult loads a result or writes the matching error response.
func (s *Server) loadResult(w http.ResponseWriter, r *http.Request) (*db.CheckResult, bool) {
	id := r.PathValue("id")
	if id == "" {
		http.NotFound(w, r)
		return nil, false
	}
	result, err := s.Results.Find(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		http.NotFound(w, r)
		return nil, false
	}
	if err != nil {
		slog.Error("load result", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return nil, false
	}
	return result, true
}

// resultTitle names a result for the page and the card.
func resultTitle(result *db.CheckResult) string {
	title := result.Title
	if title == "" {
		title = "กลอนแปด"
	}
	if result.Failures == 0 {
		return fmt.Sprintf("%s - สัมผัสครบถ้วน", title)
	}
	return fmt.Sprintf("%s - ผิดสัมผัส %d จุด", title, result.Failures)
}

// displayVerses returns each verse as display text. The typed words are used when
// they line up with the checked verses; otherwise the syllables are joined.
func displayVerses(result *db.CheckResult) []string {
	report := result.Report
	if report == nil {
		return nil
	}
	if fields := strings.Fields(result.Text); len(fields) == len(report.Verses) {
		return fields
	}
	out := make([]string, len(report.Verses))
	for i, v := range report.Verses {
		out[i] = strings.Join(v, "")
	}
	return out
}

// HandleViewResultPage serves the result page with OGP meta tags.
func (s *Server) HandleViewResultPage(w http.ResponseWriter, r *http.Request) {
	result, ok := s.loadResult(w, r)
	if !ok {
		return
	}

	title := resultTitle(result)
	desc := strings.Join(displayVerses(result), " / ")
	if len([]rune(desc)) > 80 {
		desc = string([]rune(desc)[:77]) + "…"
	}

	scheme := "https"
	if fwd := r.Header.Get("X-Forwarded-Proto"); fwd != "" {
		scheme = fwd
	}
	baseURL := fmt.Sprintf("%s://%s", scheme, r.Host)
	ogpURL := fmt.Sprintf("%s/results/%s/ogp.svg", baseURL, result.ID)
	pageURL := fmt.Sprintf("%s/results/%s", baseURL, result.ID)

	resultJSON, _ := json.Marshal(map[string]any{
		"result": result,
		"lines":  displayVerses(result),
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, resultPageHTML,
		esc(title), esc(title), esc(desc), esc(ogpURL), esc(pageURL),
		esc(title), esc(desc), esc(ogpURL),
		scriptSafe(resultJSON))
}

func esc(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	return s
}

// scriptSafe keeps JSON from closing the surrounding script element.
func scriptSafe(b []byte) string {
	return strings.ReplaceAll(string(b), "</", `<\/`)
}
