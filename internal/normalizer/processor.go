package normalizer

import (
	"errors"
	"fmt"
	"io"

	"quizload/internal/logger"
	"quizload/internal/models"
)

// RowSource yields header-bound rows in source order and io.EOF when exhausted.
// Any other error is a failure of the source itself.
type RowSource interface {
	Next() (models.Row, error)
}

// Result holds the outcome of one batch.
type Result struct {
	Questions   []models.Question
	Diagnostics []models.Diagnostic
	// Rows counts data rows read, excluding the header.
	Rows int
}

// Clean reports whether every row produced a Question.
func (r *Result) Clean() bool {
	return len(r.Diagnostics) == 0
}

// Processor runs a Transformer over every row of a source.
type Processor struct {
	transformer *Transformer
	log         *logger.Logger
}

// NewProcessor creates a new processor instance. log may be nil.
func NewProcessor(log *logger.Logger) *Processor {
	return &Processor{
		transformer: NewTransformer(),
		log:         log,
	}
}

// Process transforms all rows from src. Row failures are collected as
// diagnostics; only failures of src itself are returned as an error.
func (p *Processor) Process(src RowSource) (*Result, error) {
	result := &Result{
		Questions:   []models.Question{},
		Diagnostics: []models.Diagnostic{},
	}

	for {
		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to read row after %d data rows: %w", result.Rows, err)
		}

		result.Rows++

		q, err := p.transformSafe(row)
		if err != nil {
			result.Diagnostics = append(result.Diagnostics, models.Diagnostic{
				RowNum: row.Num,
				Error:  err.Error(),
				Row:    row.Debug(),
			})

			if p.log != nil {
				p.log.Debug("row rejected", "row", row.Num, "error", err)
			}

			continue
		}

		result.Questions = append(result.Questions, q)
	}

	if p.log != nil {
		p.log.Info("batch processed",
			"rows", result.Rows,
			"questions", len(result.Questions),
			"diagnostics", len(result.Diagnostics))
	}

	return result, nil
}

// transformSafe keeps a panic in one row from taking down the batch.
func (p *Processor) transformSafe(row models.Row) (q models.Question, err error) {
	defer func() {
		if r := recover(); r != nil {
			q = models.Question{}
			err = fmt.Errorf("unexpected row failure: %v", r)
		}
	}()

	return p.transformer.TransformRow(row)
}

// LoadQuestions runs a default Processor over src.
func LoadQuestions(src RowSource) ([]models.Question, []models.Diagnostic, error) {
	result, err := NewProcessor(nil).Process(src)
	if err != nil {
		return nil, nil, err
	}

	return result.Questions, result.Diagnostics, nil
}
