package klon

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"reflect"
	"strings"
	"sync"
	"testing"
)

// recommendMembers holds six eligible words followed by one word per exclusion:
// identical sound, too far, awkward ending, repetition mark, slash, whitespace and
// too many syllables.
var recommendMembers = []string{
	"ตา", "นา", "ลา", "ปลา", "ยา", "ขา",
	"มา", "ฟ้า", "ครุฑ", "ต่างๆ", "กา/ขา", "ทาง ยาว", "มหาลาภา",
}

func recommendDeps() Deps {
	deps := testDeps()
	deps.Pronouncer = mapPronouncer{prons: map[string]string{"มหาลาภา": "มะ-หา-ลา-พา"}}
	deps.Dictionary = mapDictionary{members: map[string][]string{"มา": recommendMembers}}
	deps.Scorer = mapScorer{scores: map[string]float64{"มา": 0, "ฟ้า": 12.5, "ขา": 12}}
	return deps
}

func TestRecommend_FiltersAndBounds(t *testing.T) {
	e := newTestEngine(t, recommendDeps())
	eligible := map[string]bool{"ตา": true, "นา": true, "ลา": true, "ปลา": true, "ยา": true, "ขา": true}
	for i := 0; i < 20; i++ {
		got := e.Recommend(context.Background(), "มา")
		if len(got) != maxRecommendations {
			t.Fatalf("got %d recommendations, want %d", len(got), maxRecommendations)
		}
		seen := map[string]bool{}
		for _, w := range got {
			if !eligible[w] {
				t.Errorf("ineligible recommendation %q", w)
			}
			if seen[w] {
				t.Errorf("duplicate recommendation %q", w)
			}
			seen[w] = true
		}
	}
}

func TestRecommend_SeededSampleIsDeterministic(t *testing.T) {
	a := newTestEngine(t, recommendDeps(), WithRand(rand.NewPCG(7, 7)))
	b := newTestEngine(t, recommendDeps(), WithRand(rand.NewPCG(7, 7)))
	ra := a.Recommend(context.Background(), "มา")
	rb := b.Recommend(context.Background(), "มา")
	if !reflect.DeepEqual(ra, rb) {
		t.Errorf("same seed gave %v and %v", ra, rb)
	}
}

func TestRecommend_FewCandidatesKeepOrder(t *testing.T) {
	deps := recommendDeps()
	deps.Dictionary = mapDictionary{members: map[string][]string{"มา": {"ตา", "มา", "นา"}}}
	e := newTestEngine(t, deps)
	got := e.Recommend(context.Background(), "มา")
	if !reflect.DeepEqual(got, []string{"ตา", "นา"}) {
		t.Errorf("Recommend = %v", got)
	}
}

func TestRecommend_CollaboratorFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Deps)
	}{
		{"dictionary error", func(d *Deps) { d.Dictionary = mapDictionary{err: errors.New("down")} }},
		{"scorer error", func(d *Deps) { d.Scorer = mapScorer{err: errors.New("down")} }},
		{"scorer shape", func(d *Deps) { d.Scorer = mapScorer{short: true} }},
		{"pronouncer error", func(d *Deps) { d.Pronouncer = mapPronouncer{fail: map[string]bool{"ตา": true}} }},
		{"no dictionary", func(d *Deps) { d.Dictionary = nil }},
		{"no scorer", func(d *Deps) { d.Scorer = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := recommendDeps()
			tt.mutate(&deps)
			e := newTestEngine(t, deps)
			got := e.Recommend(context.Background(), "มา")
			if got == nil || len(got) != 0 {
				t.Errorf("Recommend = %#v, want empty list", got)
			}
		})
	}
}

func TestRecommend_FailureStillReported(t *testing.T) {
	deps := recommendDeps()
	deps.Dictionary = mapDictionary{err: errors.New("down")}
	e := newTestEngine(t, deps)
	rep, err := e.Check(context.Background(), poem(verse("ก", "ก", "มา"), verse("ก", "ก", "ดี")))
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(rep.Messages) != 1 || !strings.HasSuffix(rep.Messages[0], "คือ: ไม่พบ") {
		t.Errorf("messages = %v", rep.Messages)
	}
	if rep.VerseStatuses[0] != Fail {
		t.Error("collaborator failure must not turn a failure into a pass")
	}
}

func TestPlainWord(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"ตา", true},
		{"ครุฑ", false},
		{"โทษ", false},
		{"ต่างๆ", false},
		{"ฯลฯ", false},
		{`ก\ข`, false},
		{"ก ข", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := plainWord(tt.word); got != tt.want {
			t.Errorf("plainWord(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

type requestIDKey struct{}

// ctxRecorder is a slog handler that keeps the request id found on the context of
// every warning it handles.
type ctxRecorder struct {
	mu  sync.Mutex
	ids []any
}

func (h *ctxRecorder) Enabled(context.Context, slog.Level) bool { return true }
func (h *ctxRecorder) WithAttrs([]slog.Attr) slog.Handler       { return h }
func (h *ctxRecorder) WithGroup(string) slog.Handler            { return h }

func (h *ctxRecorder) Handle(ctx context.Context, r slog.Record) error {
	if r.Level == slog.LevelWarn {
		h.mu.Lock()
		h.ids = append(h.ids, ctx.Value(requestIDKey{}))
		h.mu.Unlock()
	}
	return nil
}

func TestRecommend_WarningsCarryContext(t *testing.T) {
	tests := []struct {
		name string
		deps func(Deps) Deps
	}{
		{"dictionary", func(d Deps) Deps {
			d.Dictionary = mapDictionary{err: errors.New("store down")}
			return d
		}},
		{"pronouncer", func(d Deps) Deps {
			d.Pronouncer = mapPronouncer{fail: map[string]bool{"ตา": true}}
			return d
		}},
		{"scorer", func(d Deps) Deps {
			d.Scorer = mapScorer{err: errors.New("scorer down")}
			return d
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &ctxRecorder{}
			e := newTestEngine(t, tt.deps(recommendDeps()), WithLogger(slog.New(rec)))
			ctx := context.WithValue(context.Background(), requestIDKey{}, "req-1")

			if got := e.Recommend(ctx, "มา"); len(got) != 0 {
				t.Errorf("Recommend = %q, want none", got)
			}
			rec.mu.Lock()
			defer rec.mu.Unlock()
			if len(rec.ids) == 0 {
				t.Fatal("no warning logged")
			}
			for _, id := range rec.ids {
				if id != "req-1" {
					t.Errorf("warning logged with request id %v, want req-1", id)
				}
			}
		})
	}
}
