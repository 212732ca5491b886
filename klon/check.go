package klon

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

// Check runs the whole pipeline over text: tokenize, pronounce, split into verses and
// stanzas, evaluate the rhyme scheme and attach recommendations to every failure.
// Only context errors are returned; collaborator failures degrade the report.
func (e *Engine) Check(ctx context.Context, text string) (*Report, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if e.logger.Enabled(ctx, slog.LevelDebug) {
		e.logger.DebugContext(ctx, "syllable tokens", "syllables", e.deps.Tokenizer.Syllables(text))
	}

	words := trimBlankTokens(e.deps.Tokenizer.Words(text))
	e.logger.DebugContext(ctx, "word tokens", "words", words)

	prons, err := e.pronounceAll(ctx, words, true)
	if err != nil {
		return nil, err
	}
	e.logger.DebugContext(ctx, "pronunciations", "pronunciations", prons)

	syllables := Syllabify(prons)
	verses := SplitVerses(syllables)
	e.logger.DebugContext(ctx, "verses", "count", len(verses))

	rep := e.evaluate(ctx, verses)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rep.SyllableCount = CountSyllables(syllables)
	rep.ProcessingTime = time.Since(start).Seconds()
	return rep, nil
}

// trimBlankTokens drops whitespace tokens from both ends.
func trimBlankTokens(tokens []string) []string {
	for len(tokens) > 0 && strings.TrimSpace(tokens[0]) == "" {
		tokens = tokens[1:]
	}
	for len(tokens) > 0 && strings.TrimSpace(tokens[len(tokens)-1]) == "" {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}
