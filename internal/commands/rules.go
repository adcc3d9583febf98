package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/shiwake-dev/shiwake/internal/classify"
	"github.com/shiwake-dev/shiwake/internal/rules"
)

func newRulesCommand() *cobra.Command {
	rulesCmd := &cobra.Command{
		Use:   "rules",
		Short: "Rule table operations",
	}
	rulesCmd.AddCommand(newRulesCheckCommand())
	return rulesCmd
}

func newRulesCheckCommand() *cobra.Command {
	var booksDir string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Audit the rule tables for configuration gaps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(booksDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runRulesCheck(absDir)
		},
	}

	cmd.Flags().StringVar(&booksDir, "books", ".", "books directory")

	return cmd
}

func runRulesCheck(booksRoot string) error {
	r, err := rules.Load(filepath.Join(booksRoot, rulesFile))
	if err != nil {
		return err
	}

	gaps := classify.NewEngine(r).Gaps()
	if len(gaps) == 0 {
		fmt.Println("No configuration gaps found")
		return nil
	}
	for _, gap := range gaps {
		fmt.Println(gap)
	}
	return fmt.Errorf("%d configuration gap(s)", len(gaps))
}
