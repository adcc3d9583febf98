package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/shiwake-dev/shiwake/internal/classify"
	"github.com/shiwake-dev/shiwake/internal/gitops"
	"github.com/shiwake-dev/shiwake/internal/journal"
	"github.com/shiwake-dev/shiwake/internal/model"
	"github.com/shiwake-dev/shiwake/internal/report"
	"github.com/shiwake-dev/shiwake/internal/review"
	"github.com/shiwake-dev/shiwake/internal/rules"
	"github.com/shiwake-dev/shiwake/internal/statement"
)

// journalSheet is the annotate output file under export/.
const journalSheet = "export/journal-sheet.csv"

func newAnnotateCommand() *cobra.Command {
	var booksDir string
	var commit bool

	cmd := &cobra.Command{
		Use:   "annotate",
		Short: "Classify imported card statements into a journal sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(booksDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runAnnotate(absDir, commit)
		},
	}

	cmd.Flags().StringVar(&booksDir, "books", ".", "books directory")
	cmd.Flags().BoolVar(&commit, "commit", false, "commit the exported journal sheet")

	return cmd
}

func runAnnotate(booksRoot string, commit bool) error {
	r, err := rules.Load(filepath.Join(booksRoot, rulesFile))
	if err != nil {
		return err
	}
	engine := classify.NewEngine(r)

	txns, processed, err := readImports(booksRoot)
	if err != nil {
		return err
	}

	var recs []model.AnnotatedRecord
	var flags []review.Flag
	for _, txn := range txns {
		rec, reasons := engine.Annotate(txn)
		recs = append(recs, rec)
		for _, reason := range reasons {
			flags = append(flags, review.Flag{
				Date:     rec.Date,
				Merchant: rec.Merchant,
				Amount:   rec.Amount,
				Reason:   reason,
			})
		}
	}

	outPath := filepath.Join(booksRoot, journalSheet)
	if err := writeJournalSheet(outPath, recs); err != nil {
		return err
	}

	if len(flags) > 0 {
		if err := review.Append(booksRoot, flags); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to write review flags: %v\n", err)
		}
	}

	for _, name := range processed {
		if err := statement.MarkProcessed(booksRoot, name); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}

	report.Summary(os.Stdout, recs)
	fmt.Printf("\nWrote %s (%d rows, %d flagged for review)\n", outPath, len(recs), len(flags))

	if commit {
		hash, err := gitops.CommitAll(booksRoot, "annotate: export journal sheet", commitAuthorName, commitAuthorEmail)
		if err != nil {
			return fmt.Errorf("committing journal sheet: %w", err)
		}
		fmt.Printf("Committed %s\n", hash)
	}
	return nil
}

// readImports parses every statement CSV in import/. A file that fails to
// parse is skipped with a warning; the run continues with what was read.
func readImports(booksRoot string) ([]model.Transaction, []string, error) {
	files, err := statement.Scan(booksRoot)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return nil, nil, fmt.Errorf("no statement CSVs in %s", filepath.Join(booksRoot, "import"))
	}

	parser := statement.DefaultRegistry().Get("meisai")

	var txns []model.Transaction
	var processed []string
	for _, fi := range files {
		parsed, err := parseFile(parser, fi.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: skipping %s: %v\n", fi.Name, err)
			continue
		}
		txns = append(txns, parsed...)
		processed = append(processed, fi.Name)
	}
	if len(txns) == 0 {
		return nil, nil, fmt.Errorf("no transactions found in %d statement files", len(files))
	}
	return txns, processed, nil
}

func parseFile(p statement.Parser, path string) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return p.Parse(f)
}

func writeJournalSheet(path string, recs []model.AnnotatedRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating export dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating journal sheet: %w", err)
	}
	defer f.Close()

	if err := journal.WriteRecords(f, recs); err != nil {
		return fmt.Errorf("writing journal sheet: %w", err)
	}
	return nil
}
