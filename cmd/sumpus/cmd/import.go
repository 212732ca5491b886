package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sumpus.exe.dev/db"
	"sumpus.exe.dev/thai"
)

var importCmd = &cobra.Command{
	Use:   "import <lexicon.tsv>...",
	Short: "Load lexicon words into the word store",
	Long: `Load one or more tab-separated lexicon files into the word store. Each line
is word<TAB>pronunciation, or a bare word read as written. Existing words are
updated.

Example:
  sumpus import words.tsv
  sumpus import --dsn postgres://localhost/sumpus extra.tsv`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg := getConfig()
	store, err := db.Open(cfg.DSN)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer store.Close()
	if err := db.RunMigrations(store); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	words := db.NewWordRepo(store)

	total := 0
	for _, path := range args {
		lex, err := thai.LoadLexiconFile(path)
		if err != nil {
			return fmt.Errorf("loading %s: %w", path, err)
		}
		n, err := words.Upsert(cmd.Context(), lex.Entries())
		if err != nil {
			return fmt.Errorf("importing %s: %w", path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d words\n", path, n)
		total += n
	}
	count, err := words.Count(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d words, store now holds %d\n", total, count)
	return nil
}
