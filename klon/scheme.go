package klon

import (
	"context"
	"fmt"
	"strings"
)

type target int

const (
	// targetThird compares against the third syllable of the partner verse; the
	// fifth syllable, when present, can still rescue the pair.
	targetThird target = iota
	// targetLast compares against the last syllable of the partner verse.
	targetLast
)

// pairRule is one required rhyme of the stanza. Verse start (local index) rhymes its
// last syllable with a syllable of verse start+offset. The pair is only evaluated
// when verse start+1 has at least minLen syllables.
type pairRule struct {
	start  int
	offset int
	minLen int
	target target
	label  string
}

var scheme = []pairRule{
	{start: 0, offset: 1, minLen: 3, target: targetThird, label: "คำ1"},
	{start: 2, offset: 1, minLen: 3, target: targetThird, label: "คำ2"},
	{start: 4, offset: 1, minLen: 3, target: targetThird, label: "คำ3"},
	{start: 6, offset: 1, minLen: 3, target: targetThird, label: "คำ4"},
	{start: 1, offset: 1, minLen: StanzaSize, target: targetLast, label: "คำ5"},
	{start: 3, offset: 2, minLen: StanzaSize, target: targetLast, label: "คำ6"},
	{start: 5, offset: 1, minLen: StanzaSize, target: targetLast, label: "คำ7"},
}

const (
	verdictMatched   = "สัมผัสกัน"
	verdictUnmatched = "ไม่สัมผัสกัน"
	noRecommendation = "ไม่พบ"
)

// syllableAt returns verse[pos]. Positions come from the guards of the scheme, so an
// out-of-range position is a bug in the table.
func syllableAt(verse []string, pos int) string {
	if pos < 0 || pos >= len(verse) {
		panic(fmt.Sprintf("klon: syllable position %d out of range for verse of %d", pos, len(verse)))
	}
	return verse[pos]
}

// applies reports whether r can be evaluated for the verse at global index i.
func (r pairRule) applies(verses [][]string, i int) bool {
	if len(verses[i]) == 0 || i+1 >= len(verses) || len(verses[i+1]) < r.minLen {
		return false
	}
	j := i + r.offset
	return j < len(verses) && len(verses[j]) > 0
}

// evaluate walks every stanza and applies the scheme.
func (e *Engine) evaluate(ctx context.Context, verses [][]string) *Report {
	rep := newReport(verses)
	for s, stanza := range Stanzas(verses) {
		base := s * StanzaSize
		for local := range stanza {
			for _, rule := range scheme {
				if rule.start != local || !rule.applies(verses, base+local) {
					continue
				}
				e.evaluatePair(ctx, rep, rule, s, base+local, verses)
			}
		}
	}
	return rep
}

func (e *Engine) evaluatePair(ctx context.Context, rep *Report, rule pairRule, stanza, i int, verses [][]string) {
	a := verses[i]
	b := verses[i+rule.offset]
	word := syllableAt(a, len(a)-1)
	verseNum := i%StanzaSize + 1
	partnerNum := verseNum + rule.offset

	var (
		named   string
		targets []string
		matched bool
		rescued bool
	)
	switch rule.target {
	case targetThird:
		third := syllableAt(b, 2)
		targets = []string{third}
		var fifth string
		if len(b) >= 5 {
			fifth = syllableAt(b, 4)
			targets = append(targets, fifth)
		}
		named = third
		if named == "" {
			named = fifth
		}
		if named == "" {
			named = syllableAt(b, len(b)-1)
		}
		matched = e.Rhymes(word, third)
		rescued = !matched && len(targets) > 1 && e.Rhymes(word, fifth)
	case targetLast:
		named = syllableAt(b, len(b)-1)
		targets = []string{named}
		matched = e.Rhymes(word, named)
	}

	verdict := verdictUnmatched
	if matched {
		verdict = verdictMatched
	}
	rep.RhymePairs = append(rep.RhymePairs, RhymePair{
		Description: fmt.Sprintf("%s วรรคที่ %d และ %s วรรคที่ %d %s", word, verseNum, named, partnerNum, verdict),
		Matched:     matched,
		Rescued:     rescued,
	})
	if matched || rescued {
		return
	}

	recs := e.Recommend(ctx, word)
	f := Failure{
		Stanza:          stanza + 1,
		Label:           rule.label,
		Verse:           verseNum,
		PartnerVerse:    partnerNum,
		Syllable:        word,
		Targets:         targets,
		Recommendations: recs,
	}
	rep.Failures = append(rep.Failures, f)
	rep.Messages = append(rep.Messages, f.Message())
	rep.markFail(i)
	rep.markFail(i + rule.offset)
}

// Message renders the failure in Thai, naming the stanza, the rule, both verses and
// the recommended replacements.
func (f Failure) Message() string {
	quoted := make([]string, len(f.Targets))
	for i, t := range f.Targets {
		quoted[i] = "'" + t + "'"
	}
	recs := noRecommendation
	if len(f.Recommendations) > 0 {
		recs = strings.Join(f.Recommendations, ", ")
	}
	return fmt.Sprintf("บทที่ %d %s '%s' ของวรรค %d ไม่สัมผัสกับ %s ของวรรค %d และแนะนำคำที่สัมผัส คือ: %s",
		f.Stanza, f.Label, f.Syllable, f.Verse, strings.Join(quoted, " หรือ "), f.PartnerVerse, recs)
}
