package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"sumpus.exe.dev/klon"
	"sumpus.exe.dev/srv"
	"sumpus.exe.dev/thai"
)

var checkCmd = &cobra.Command{
	Use:   "check [file|-]",
	Short: "Check the rhymes of a poem",
	Long: `Check a klon paet poem read from a file, or from stdin when the file is
omitted or "-". Verses are painted green or red and every broken pair is listed.

By default only the lexicon is used. With --store the word store named by --dsn
supplies rhyme candidates as well.

Example:
  sumpus check poem.txt
  echo "..." | sumpus check --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

var (
	checkJSON  bool
	checkStore bool
)

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "print the report as JSON")
	checkCmd.Flags().BoolVar(&checkStore, "store", false, "use the word store for recommendations")
}

var (
	passStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#2f7d4f"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#b83a2a")).Bold(true)
	stanzaStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#b83a2a")).PaddingLeft(2)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#857868"))
)

func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}

// checkEngine returns an engine and a cleanup func.
func checkEngine(ctx context.Context) (*klon.Engine, func(), error) {
	cfg := getConfig()
	if checkStore {
		server, err := srv.New(cfg)
		if err != nil {
			return nil, nil, err
		}
		return server.Engine, func() { server.Close() }, nil
	}
	lex, err := srv.BuildLexicon(ctx, cfg.Lexicon, nil)
	if err != nil {
		return nil, nil, err
	}
	engine, err := srv.NewEngine(lex, nil, thai.NewRhymeIndex(lex), cfg.Workers)
	if err != nil {
		return nil, nil, err
	}
	return engine, func() {}, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("no text to check")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), getConfig().CheckTimeout)
	defer cancel()

	engine, cleanup, err := checkEngine(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	report, err := engine.Check(ctx, text)
	if err != nil {
		return fmt.Errorf("checking: %w", err)
	}

	out := cmd.OutOrStdout()
	if checkJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	fmt.Fprint(out, renderReport(report, strings.Fields(text)))
	return nil
}

// renderReport lays out each stanza as couplets, colours verses by status, and
// lists the failure messages after the poem.
func renderReport(report *klon.Report, typed []string) string {
	verses := make([]string, len(report.Verses))
	for i, v := range report.Verses {
		if len(typed) == len(report.Verses) {
			verses[i] = typed[i]
		} else {
			verses[i] = strings.Join(v, "")
		}
	}

	var b strings.Builder
	for start := 0; start < len(verses); start += klon.StanzaSize {
		fmt.Fprintln(&b, stanzaStyle.Render(fmt.Sprintf("บทที่ %d", start/klon.StanzaSize+1)))
		end := min(start+klon.StanzaSize, len(verses))
		for i := start; i < end; i += 2 {
			line := paint(verses[i], report.VerseStatuses[i])
			if i+1 < end {
				line += "    " + paint(verses[i+1], report.VerseStatuses[i+1])
			}
			fmt.Fprintln(&b, "  "+line)
		}
		fmt.Fprintln(&b)
	}

	for _, m := range report.Messages {
		fmt.Fprintln(&b, messageStyle.Render(m))
	}
	verdict := passStyle.Render("สัมผัสครบถ้วน")
	if n := len(report.Failures); n > 0 {
		verdict = failStyle.Render(fmt.Sprintf("ผิดสัมผัส %d จุด", n))
	}
	fmt.Fprintf(&b, "%s %s\n", verdict,
		mutedStyle.Render(fmt.Sprintf("(%d พยางค์, %.3f วินาที)", report.SyllableCount, report.ProcessingTime)))
	return b.String()
}

func paint(verse string, status klon.Status) string {
	if verse == "" {
		verse = "-"
	}
	if status == klon.Fail {
		return failStyle.Render(verse)
	}
	return passStyle.Render(verse)
}
