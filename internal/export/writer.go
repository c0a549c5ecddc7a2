// Package export writes load results to JSON files.
package export

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"quizload/internal/models"
)

// Output formats.
const (
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// ErrUnknownFormat is returned for an output format other than json or jsonl.
var ErrUnknownFormat = errors.New("unknown output format")

// WriteQuestions writes questions to path as a JSON array or as JSON lines.
func WriteQuestions(path, format string, pretty bool, questions []models.Question) error {
	switch format {
	case FormatJSON:
		return writeJSON(path, pretty, questions)
	case FormatJSONL:
		return writeJSONLines(path, questions)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// WriteDiagnostics writes diagnostics to path as a JSON array.
func WriteDiagnostics(path string, pretty bool, diagnostics []models.Diagnostic) error {
	return writeJSON(path, pretty, diagnostics)
}

// WriteText writes s to path, creating parent directories.
func WriteText(path, s string) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(s), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

func writeJSON(path string, pretty bool, v any) error {
	var (
		data []byte
		err  error
	)

	if pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	return WriteText(path, string(data)+"\n")
}

func writeJSONLines(path string, questions []models.Question) (err error) {
	if err := ensureDir(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)

	for i := range questions {
		if err := enc.Encode(&questions[i]); err != nil {
			return fmt.Errorf("failed to encode question %d: %w", i, err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

func ensureDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	return nil
}
