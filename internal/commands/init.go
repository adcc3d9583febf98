package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/shiwake-dev/shiwake/internal/gitops"
	"github.com/shiwake-dev/shiwake/internal/rules"
)

// rulesFile is the rules document at the books directory root.
const rulesFile = "rules.yaml"

const (
	commitAuthorName  = "shiwake"
	commitAuthorEmail = "shiwake@localhost"
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a books directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runInit(absDir)
		},
	}
	return cmd
}

func runInit(dir string) error {
	dirs := []string{
		"import",
		filepath.Join("import", "processed"),
		"export",
		"logs",
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	if err := rules.Save(filepath.Join(dir, rulesFile), rules.Default()); err != nil {
		return fmt.Errorf("writing rules: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "import", ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}

	if err := gitops.Init(dir); err != nil {
		return fmt.Errorf("git init: %w", err)
	}
	hash, err := gitops.CommitAll(dir, "init: books directory", commitAuthorName, commitAuthorEmail)
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}

	fmt.Printf("Initialized books directory at %s (%s)\n", dir, hash)
	return nil
}
