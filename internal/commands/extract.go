package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shiwake-dev/shiwake/internal/extract"
	"github.com/shiwake-dev/shiwake/internal/model"
	"github.com/shiwake-dev/shiwake/internal/statement"
)

func newExtractCommand() *cobra.Command {
	extractCmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract row subsets from the integrated bank statement",
	}
	extractCmd.AddCommand(newExtractSubCommand(
		"debit",
		"Extract card-debit withdrawals",
		"debit-transactions.csv",
		extract.Debit,
	))
	extractCmd.AddCommand(newExtractSubCommand(
		"priority",
		"Extract transfers and direct debits with identifiable counterparties",
		"high-priority-expenses.csv",
		extract.HighPriority,
	))
	return extractCmd
}

func newExtractSubCommand(name, short, defaultOut string, filter func([]model.BankLine) []model.BankLine) *cobra.Command {
	var in, out string

	cmd := &cobra.Command{
		Use:   name + " --in <integrated.csv>",
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(in, out, filter)
		},
	}

	cmd.Flags().StringVar(&in, "in", "integrated-statement.csv", "integrated bank statement")
	cmd.Flags().StringVar(&out, "out", defaultOut, "output file")

	return cmd
}

func runExtract(in, out string, filter func([]model.BankLine) []model.BankLine) error {
	f, err := os.Open(in)
	if err != nil {
		return fmt.Errorf("opening %s: %w", in, err)
	}
	lines, err := statement.ReadIntegrated(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("reading %s: %w", in, err)
	}

	matched := filter(lines)
	if err := writeIntegrated(out, matched); err != nil {
		return err
	}
	fmt.Printf("Extracted %d of %d rows into %s\n", len(matched), len(lines), out)
	return nil
}
