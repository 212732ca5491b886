package klon

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
)

// avoidEndings are letters a recommended word may not end with.
const avoidEndings = "ฑษฒญณฐธฎฤฆฏฌศซฉฮฬฝ"

// avoidMarks may not appear anywhere in a recommended word.
const avoidMarks = `ๆ\/ฯ`

// Recommend returns up to five words that share the rhyme class of syllable, are
// short and plainly spelled, and sound close to it. When more than five qualify a
// random sample is returned. A collaborator failure yields an empty list.
func (e *Engine) Recommend(ctx context.Context, syllable string) []string {
	out := []string{}
	if e.deps.Dictionary == nil || e.deps.Scorer == nil {
		return out
	}
	members, err := e.deps.Dictionary.RhymeMembers(ctx, syllable)
	if err != nil {
		e.logger.WarnContext(ctx, "rhyme members", "syllable", syllable, "error", err)
		return out
	}

	candidates := make([]string, 0, len(members))
	for _, w := range members {
		if plainWord(w) {
			candidates = append(candidates, w)
		}
	}
	prons, err := e.pronounceAll(ctx, candidates, false)
	if err != nil {
		e.logger.WarnContext(ctx, "pronounce candidates", "syllable", syllable, "error", err)
		return out
	}
	short := make([]string, 0, len(candidates))
	for i, w := range candidates {
		if strings.Count(prons[i], "-") <= maxBoundaries {
			short = append(short, w)
		}
	}

	scores, err := e.deps.Scorer.Distances(ctx, syllable, short)
	if err != nil {
		e.logger.WarnContext(ctx, "phonetic distance", "syllable", syllable, "error", err)
		return out
	}
	if len(scores) != len(short) {
		e.logger.WarnContext(ctx, "phonetic distance", "syllable", syllable, "candidates", len(short), "scores", len(scores))
		return out
	}
	for i, w := range short {
		if scores[i] > 0 && scores[i] <= maxDistance {
			out = append(out, w)
		}
	}
	return e.sample(out, maxRecommendations)
}

// plainWord reports whether w is free of awkward endings, repetition and
// abbreviation marks, slashes and whitespace.
func plainWord(w string) bool {
	if w == "" {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(w)
	if strings.ContainsRune(avoidEndings, last) {
		return false
	}
	return !strings.ContainsAny(w, avoidMarks) && !strings.ContainsFunc(w, unicode.IsSpace)
}

// sample picks k items without replacement, in random order. Slices of at most k
// items are returned unchanged.
func (e *Engine) sample(items []string, k int) []string {
	if len(items) <= k {
		return items
	}
	picked := append([]string(nil), items...)
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := 0; i < k; i++ {
		j := i + e.rnd.IntN(len(picked)-i)
		picked[i], picked[j] = picked[j], picked[i]
	}
	return picked[:k]
}

// pronounceAll pronounces words concurrently, keeping input order. Whitespace
// tokens become Blank without a lookup. With fallback set, a failed lookup is
// logged and the word's spelling used instead; otherwise the first error is
// returned. Context errors are always returned.
func (e *Engine) pronounceAll(ctx context.Context, words []string, fallback bool) ([]string, error) {
	out := make([]string, len(words))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, w := range words {
		if strings.TrimSpace(w) == "" {
			out[i] = Blank
			continue
		}
		g.Go(func() error {
			p, err := e.deps.Pronouncer.Pronounce(gctx, w)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil || !fallback {
					return err
				}
				e.logger.WarnContext(gctx, "pronounce", "word", w, "error", err)
				p = w
			}
			out[i] = strings.ReplaceAll(p, phinthu, "")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// phinthu marks clusters in pronunciations and carries no sound.
const phinthu = "ฺ"
