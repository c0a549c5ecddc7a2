// Package loader wires the source, normalizer and exporters into one batch run.
package loader

import (
	"fmt"
	"time"

	"quizload/internal/config"
	"quizload/internal/export"
	"quizload/internal/formatter"
	"quizload/internal/logger"
	"quizload/internal/normalizer"
	"quizload/internal/source"
)

// Run loads the configured input and writes every configured output.
// Row failures end up in the result; source and write failures are returned.
func Run(cfg *config.Config, log *logger.Logger) (*normalizer.Result, error) {
	delim, err := cfg.DelimiterRune()
	if err != nil {
		return nil, err
	}

	in := cfg.Loader.Input
	log = log.With("input", in.Path)

	start := time.Now()

	src, err := source.Open(in.Path, source.Options{
		Encoding:   in.Encoding,
		Delimiter:  delim,
		LazyQuotes: in.LazyQuotes,
	})
	if err != nil {
		return nil, err
	}
	defer src.Close()

	log.Debug("source opened", "encoding", in.Encoding, "columns", src.Header())

	result, err := normalizer.NewProcessor(log).Process(src)
	if err != nil {
		return nil, err
	}

	for _, d := range result.Diagnostics {
		log.Warn("row skipped", "row", d.RowNum, "error", d.Error)
	}

	if err := writeOutputs(cfg, result); err != nil {
		return nil, err
	}

	log.Info("load complete",
		"questions", len(result.Questions),
		"diagnostics", len(result.Diagnostics),
		"duration", time.Since(start))

	return result, nil
}

func writeOutputs(cfg *config.Config, result *normalizer.Result) error {
	out := cfg.Loader.Output

	if err := export.WriteQuestions(out.Path, out.Format, out.PrettyPrint, result.Questions); err != nil {
		return fmt.Errorf("write questions: %w", err)
	}

	if out.DiagnosticsPath != "" {
		if err := export.WriteDiagnostics(out.DiagnosticsPath, out.PrettyPrint, result.Diagnostics); err != nil {
			return fmt.Errorf("write diagnostics: %w", err)
		}
	}

	if out.ReportPath != "" {
		report := formatter.RenderReport(cfg.Loader.Input.Path, result, cfg.Features.SignReport)
		if err := export.WriteText(out.ReportPath, report); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	return nil
}
