package loader

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quizload/internal/config"
	"quizload/internal/logger"
)

func writeInput(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "questions.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write input: %v", err)
	}

	return path
}

func TestRun(t *testing.T) {
	dir := t.TempDir()

	cfg := config.Default()
	cfg.Loader.Input.Path = writeInput(t, dir,
		"Question_int,question,choices,answer,back,calc\n"+
			"1,2+2?,3|4|5,2,,y\n"+
			"2,Broken,a|b,,,\n")
	cfg.Loader.Output.Path = filepath.Join(dir, "out", "questions.json")
	cfg.Loader.Output.DiagnosticsPath = filepath.Join(dir, "out", "problems.json")
	cfg.Loader.Output.ReportPath = filepath.Join(dir, "out", "report.md")

	result, err := Run(cfg, logger.New(io.Discard, "debug"))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(result.Questions) != 1 || len(result.Diagnostics) != 1 {
		t.Fatalf("got %d questions, %d diagnostics; want 1, 1", len(result.Questions), len(result.Diagnostics))
	}

	for _, p := range []string{cfg.Loader.Output.Path, cfg.Loader.Output.DiagnosticsPath, cfg.Loader.Output.ReportPath} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("expected output %s: %v", p, err)
		}
	}

	report, err := os.ReadFile(cfg.Loader.Output.ReportPath)
	if err != nil {
		t.Fatalf("Failed to read report: %v", err)
	}

	if !strings.Contains(string(report), "Rejected: 1") {
		t.Errorf("unexpected report:\n%s", report)
	}
}

func TestRun_MissingInput(t *testing.T) {
	dir := t.TempDir()

	cfg := config.Default()
	cfg.Loader.Input.Path = filepath.Join(dir, "missing.csv")
	cfg.Loader.Output.Path = filepath.Join(dir, "questions.json")

	if _, err := Run(cfg, logger.New(io.Discard, "error")); err == nil {
		t.Fatal("Run expected error for missing input")
	}

	if _, err := os.Stat(cfg.Loader.Output.Path); !os.IsNotExist(err) {
		t.Error("no output should be written when the source cannot be opened")
	}
}
