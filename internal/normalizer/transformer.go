package normalizer

import (
	"errors"
	"fmt"
	"strings"

	"quizload/internal/models"
)

// ErrInvalidAnswer is returned when the answer cell is empty or does not
// point at one of the row's choices.
var ErrInvalidAnswer = errors.New("invalid or empty answer field")

// calcTruthy lists the accepted spellings of a set calc flag.
var calcTruthy = map[string]bool{
	"1":    true,
	"y":    true,
	"yes":  true,
	"true": true,
	"t":    true,
}

// Transformer turns a single row into a Question.
type Transformer struct {
	deckID string
}

// NewTransformer creates a new transformer instance.
func NewTransformer() *Transformer {
	return &Transformer{deckID: models.DefaultDeckID}
}

// TransformRow converts a row into a validated Question.
func (t *Transformer) TransformRow(row models.Row) (models.Question, error) {
	choices := SplitChoices(row.Choices.Raw())

	rawAnswer := row.Answer.Raw()

	idx, ok := ResolveAnswer(rawAnswer, len(choices))
	if !ok {
		return models.Question{}, fmt.Errorf("%w: %q", ErrInvalidAnswer, rawAnswer)
	}

	return models.Question{
		ID:              trimSpace(row.ID.Raw()),
		Prompt:          Normalize(row.Question.Raw()),
		Choices:         choices,
		CorrectIndex:    idx,
		ExplanationHTML: row.Back.Raw(),
		Type:            models.TypeSingleChoice,
		DeckID:          t.deckID,
		IsCalc:          IsCalc(row.Calc.Raw()),
	}, nil
}

// IsCalc interprets a loosely typed boolean calc flag.
func IsCalc(raw string) bool {
	return calcTruthy[strings.ToLower(trimSpace(raw))]
}
