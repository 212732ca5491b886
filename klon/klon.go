// Package klon checks the end-rhyme scheme (sumpus) of klon paet, the Thai
// eight-verse stanza, and recommends rhyming replacements for broken pairs.
//
// The engine owns the positional rules only. Segmentation, pronunciation, vowel
// classification, rhyme-class lookup and phonetic scoring are injected through the
// interfaces below; package thai and package db provide the production versions.
package klon

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync"
)

// Blank is the pronunciation of a whitespace token. In a syllable stream it marks a
// verse boundary.
const Blank = " "

// StanzaSize is the number of verses in one klon paet stanza.
const StanzaSize = 8

const (
	// maxRecommendations bounds the candidate list attached to a failure.
	maxRecommendations = 5
	// maxDistance is the largest phonetic distance a recommendation may have.
	maxDistance = 12.0
	// maxBoundaries is the most syllable boundaries a recommended word may have.
	maxBoundaries = 2
	// defaultWorkers bounds concurrent pronunciation lookups.
	defaultWorkers = 8
)

// Tokenizer splits raw text into words and, for diagnostics, syllables.
type Tokenizer interface {
	Words(text string) []string
	Syllables(text string) []string
}

// Pronouncer converts a word into hyphen-delimited syllable spellings.
type Pronouncer interface {
	Pronounce(ctx context.Context, word string) (string, error)
}

// Phonology classifies the vowel pattern (sara) of a syllable.
type Phonology interface {
	VowelPattern(syllable string) string
}

// VowelPatternFunc adapts a plain function to Phonology.
type VowelPatternFunc func(syllable string) string

// VowelPattern calls f(syllable).
func (f VowelPatternFunc) VowelPattern(syllable string) string { return f(syllable) }

// RhymeDictionary looks up the words sharing a syllable's rhyme class.
type RhymeDictionary interface {
	RhymeMembers(ctx context.Context, syllable string) ([]string, error)
}

// Scorer returns one phonetic distance per candidate, lower meaning closer.
type Scorer interface {
	Distances(ctx context.Context, reference string, candidates []string) ([]float64, error)
}

// Deps are the collaborators an Engine calls. Dictionary and Scorer are optional;
// without them failures carry no recommendations.
type Deps struct {
	Tokenizer  Tokenizer
	Pronouncer Pronouncer
	Phonology  Phonology
	Dictionary RhymeDictionary
	Scorer     Scorer
}

// Engine validates stanzas. It holds no per-request state and is safe for
// concurrent use.
type Engine struct {
	deps    Deps
	logger  *slog.Logger
	workers int

	mu  sync.Mutex // guards rnd
	rnd *rand.Rand
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source used to sample recommendations.
func WithRand(src rand.Source) Option {
	return func(e *Engine) { e.rnd = rand.New(src) }
}

// WithLogger sets the logger for pipeline diagnostics and collaborator warnings.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithWorkers bounds concurrent pronunciation lookups.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// NewEngine creates an engine. Tokenizer, Pronouncer and Phonology are required.
func NewEngine(deps Deps, opts ...Option) (*Engine, error) {
	switch {
	case deps.Tokenizer == nil:
		return nil, errors.New("klon: tokenizer is required")
	case deps.Pronouncer == nil:
		return nil, errors.New("klon: pronouncer is required")
	case deps.Phonology == nil:
		return nil, errors.New("klon: phonology is required")
	}
	e := &Engine{
		deps:    deps,
		logger:  slog.Default(),
		workers: defaultWorkers,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rnd == nil {
		e.rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return e, nil
}
