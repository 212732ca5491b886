package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sumpus.exe.dev/klon"
)

func TestRenderReport(t *testing.T) {
	report := &klon.Report{
		Messages:      []string{"บทที่ 1 คำ1 'มา' ของวรรค 1 ไม่สัมผัสกับ 'ดี' ของวรรค 2 และแนะนำคำที่สัมผัส คือ: ไม่พบ"},
		VerseStatuses: []klon.Status{klon.Fail, klon.Fail, klon.Pass},
		Failures:      []klon.Failure{{Stanza: 1, Label: "คำ1", Verse: 1, PartnerVerse: 2}},
		Verses:        [][]string{{"มา"}, {"ก", "ดี"}, {}},
		SyllableCount: 3,
	}

	tests := []struct {
		name  string
		typed []string
		want  []string
	}{
		{"typed words", []string{"มา", "กดี", "ไป"}, []string{"บทที่ 1", "มา", "กดี", "ไป"}},
		{"syllables", nil, []string{"บทที่ 1", "มา", "กดี", "-"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := renderReport(report, tt.typed)
			for _, want := range append(tt.want, report.Messages[0], "ผิดสัมผัส 1 จุด", "3 พยางค์") {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestReadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poem.txt")
	if err := os.WriteFile(path, []byte("มา ตา"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := readInput([]string{path})
	if err != nil || got != "มา ตา" {
		t.Errorf("readInput = %q, %v", got, err)
	}
	if _, err := readInput([]string{filepath.Join(t.TempDir(), "missing.txt")}); err == nil {
		t.Error("expected error for missing file")
	}
}
