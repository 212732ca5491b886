package klon

// Status is the outcome of a verse, rendered as the colour the page paints it.
type Status string

const (
	Pass Status = "green"
	Fail Status = "red"
)

// RhymePair is one evaluated pair of the scheme.
type RhymePair struct {
	Description string `json:"description"`
	Matched     bool   `json:"matched"`
	// Rescued is set when the third syllable did not rhyme but the fifth did.
	Rescued bool `json:"rescued,omitempty"`
}

// Failure is the structured form of a failure message.
type Failure struct {
	Stanza          int      `json:"stanza"`        // 1-based
	Label           string   `json:"label"`         // คำ1 .. คำ7
	Verse           int      `json:"verse"`         // 1-based, local to the stanza
	PartnerVerse    int      `json:"partner_verse"` // 1-based, local to the stanza
	Syllable        string   `json:"syllable"`
	Targets         []string `json:"targets"`
	Recommendations []string `json:"recommendations"`
}

// Report is the result of checking a text.
type Report struct {
	Messages       []string    `json:"messages"`
	VerseStatuses  []Status    `json:"lists_status"`
	RhymePairs     []RhymePair `json:"display_words"`
	Failures       []Failure   `json:"failures"`
	Verses         [][]string  `json:"verses"`
	SyllableCount  int         `json:"word_count"`
	ProcessingTime float64     `json:"processing_time"` // seconds
}

func newReport(verses [][]string) *Report {
	statuses := make([]Status, len(verses))
	for i := range statuses {
		statuses[i] = Pass
	}
	if verses == nil {
		verses = [][]string{}
	}
	return &Report{
		Messages:      []string{},
		VerseStatuses: statuses,
		RhymePairs:    []RhymePair{},
		Failures:      []Failure{},
		Verses:        verses,
	}
}

// markFail downgrades a verse. Nothing ever sets a verse back to Pass.
func (r *Report) markFail(verse int) {
	r.VerseStatuses[verse] = Fail
}

// Failed reports whether any verse failed.
func (r *Report) Failed() bool {
	for _, s := range r.VerseStatuses {
		if s == Fail {
			return true
		}
	}
	return false
}
