// Package statement reads bank and card statement CSV exports. Card exports
// arrive as Shift_JIS files dropped into import/; bank exports cover
// multi-year ranges and are merged into one integrated CSV.
package statement

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/shiwake-dev/shiwake/internal/model"
)

// Parser converts a statement CSV file into Transactions.
type Parser interface {
	Parse(r io.Reader) ([]model.Transaction, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// FileInfo describes a CSV file in the import directory.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&MeisaiParser{})
	return r
}

// importDir is the subdirectory for statement CSVs awaiting processing.
const importDir = "import"

// processedDir is the subdirectory for processed CSVs.
const processedDir = "import/processed"

// Scan returns CSV files in <booksRoot>/import/.
func Scan(booksRoot string) ([]FileInfo, error) {
	dir := filepath.Join(booksRoot, importDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading import dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

// MarkProcessed moves a file from import/ to import/processed/.
func MarkProcessed(booksRoot, fileName string) error {
	src := filepath.Join(booksRoot, importDir, fileName)
	dstDir := filepath.Join(booksRoot, processedDir)

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("creating processed dir: %w", err)
	}

	dst := filepath.Join(dstDir, fileName)
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("moving %s to processed: %w", fileName, err)
	}
	return nil
}

// nonNumeric matches everything a bank puts around a number: currency
// marks, thousands separators, stray spaces.
var nonNumeric = regexp.MustCompile(`[^0-9.\-]`)

// cleanNumber strips a statement amount cell down to digits, dot and minus.
func cleanNumber(s string) string {
	return nonNumeric.ReplaceAllString(s, "")
}

// dateLayouts are the date spellings seen across statement exports.
var dateLayouts = []string{"2006/01/02", "2006-01-02", "2006年01月02日"}
