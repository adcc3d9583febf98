package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shiwake-dev/shiwake/internal/model"
	"github.com/shiwake-dev/shiwake/internal/statement"
)

func newMergeCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "merge <export.csv>...",
		Short: "Merge multi-period bank exports into one integrated CSV",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(args, out)
		},
	}

	cmd.Flags().StringVar(&out, "out", "integrated-statement.csv", "output file")

	return cmd
}

func runMerge(paths []string, out string) error {
	lines, err := statement.MergeBankExports(paths, os.Stderr)
	if err != nil {
		return err
	}
	if err := writeIntegrated(out, lines); err != nil {
		return err
	}
	fmt.Printf("Merged %d files into %s (%d rows)\n", len(paths), out, len(lines))
	return nil
}

func writeIntegrated(path string, lines []model.BankLine) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := statement.WriteIntegrated(f, lines); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
