// Package main provides the quizload command for converting spreadsheet question exports.
package main

import (
	"flag"
	"fmt"
	"os"

	"quizload/internal/config"
	"quizload/internal/loader"
	"quizload/internal/logger"
)

const defaultConfigPath = "configs/quizload.yaml"

func main() {
	configFile := flag.String("config", "", "Path to YAML configuration file")
	input := flag.String("input", "", "Path to the delimited question export")
	output := flag.String("output", "", "Path to the questions output file")
	format := flag.String("format", "", "Output format: json or jsonl")
	diagnostics := flag.String("diagnostics", "", "Path to write rejected rows as JSON")
	report := flag.String("report", "", "Path to write a markdown load report")
	encoding := flag.String("encoding", "", "Source encoding: latin1, windows-1252, utf-8")
	delimiter := flag.String("delimiter", "", `Field delimiter (use "tab" for tabs)`)
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")
	help := flag.Bool("help", false, "Show usage information")

	flag.Parse()

	if *help {
		printUsage()
		os.Exit(0)
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	overrides := map[*string]*string{
		&cfg.Loader.Input.Path:             input,
		&cfg.Loader.Output.Path:            output,
		&cfg.Loader.Output.Format:          format,
		&cfg.Loader.Output.DiagnosticsPath: diagnostics,
		&cfg.Loader.Output.ReportPath:      report,
		&cfg.Loader.Input.Encoding:         encoding,
		&cfg.Loader.Input.Delimiter:        delimiter,
		&cfg.Loader.Logging.Level:          logLevel,
	}
	for dst, flagVal := range overrides {
		if *flagVal != "" {
			*dst = *flagVal
		}
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Invalid configuration: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	log := logger.NewLogger(cfg.Loader.Logging.Level)

	log.Info("🚀 Loading questions", "config", cfg.String())

	result, err := loader.Run(cfg, log)
	if err != nil {
		log.Error("❌ Load failed", "error", err)
		os.Exit(1)
	}

	fmt.Println("\n------------------------------------------------")
	fmt.Printf("📊 Summary Report\n")
	fmt.Println("------------------------------------------------")
	fmt.Printf("Rows read:  %d\n", result.Rows)
	fmt.Printf("Questions:  %d\n", len(result.Questions))
	fmt.Printf("Rejected:   %d\n", len(result.Diagnostics))

	for _, d := range result.Diagnostics {
		fmt.Printf("  - row %d: %s\n", d.RowNum, d.Error)
	}

	fmt.Println("------------------------------------------------")

	if !result.Clean() && cfg.Features.FailOnDiagnostics {
		os.Exit(1)
	}
}

// loadConfig reads the given file, or the default location when present,
// falling back to built-in defaults.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		if _, statErr := os.Stat(defaultConfigPath); statErr != nil {
			return config.Default(), nil
		}

		path = defaultConfigPath
	}

	fmt.Printf("⚙️  Loading configuration from: %s\n", path)

	return config.LoadFile(path)
}

func printUsage() {
	fmt.Println("Usage: ./bin/quizload [OPTIONS]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  ./bin/quizload -input questions.csv -output out/questions.json")
	fmt.Println("  ./bin/quizload -config configs/quizload.yaml -report out/report.md")
}
