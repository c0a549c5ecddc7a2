package normalizer

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"quizload/internal/models"
)

const testExplanation = "<p>Because <b>4</b>.</p>  "

func TestNewTransformer(t *testing.T) {
	tr := NewTransformer()
	if tr == nil {
		t.Fatal("NewTransformer returned nil")
	}
}

func TestTransformer_TransformRow(t *testing.T) {
	tr := NewTransformer()

	row := models.Row{
		Num:      2,
		ID:       models.Text("  Q17 "),
		Question: models.Text("  What is 2+2? "),
		Choices:  models.Text("'3|4|5"),
		Answer:   models.Text("2"),
		Back:     models.Text(testExplanation),
		Calc:     models.Text(" Y "),
	}

	q, err := tr.TransformRow(row)
	if err != nil {
		t.Fatalf("TransformRow returned unexpected error: %v", err)
	}

	want := models.Question{
		ID:              "Q17",
		Prompt:          "What is 2+2?",
		Choices:         []string{"3", "4", "5"},
		CorrectIndex:    1,
		ExplanationHTML: testExplanation,
		Type:            models.TypeSingleChoice,
		DeckID:          models.DefaultDeckID,
		IsCalc:          true,
	}

	if !reflect.DeepEqual(q, want) {
		t.Errorf("TransformRow() = %+v, want %+v", q, want)
	}

	if got := q.Choices[q.CorrectIndex]; got != "4" {
		t.Errorf("correct choice = %q, want 4", got)
	}
}

func TestTransformer_TransformRow_AbsentFields(t *testing.T) {
	tr := NewTransformer()

	q, err := tr.TransformRow(models.Row{
		Num:     2,
		Choices: models.Text("A|B"),
		Answer:  models.Text("b"),
	})
	if err != nil {
		t.Fatalf("TransformRow returned unexpected error: %v", err)
	}

	if q.ID != "" || q.Prompt != "" || q.ExplanationHTML != "" || q.IsCalc {
		t.Errorf("absent fields not defaulted: %+v", q)
	}

	if q.CorrectIndex != 1 {
		t.Errorf("CorrectIndex = %d, want 1", q.CorrectIndex)
	}
}

func TestTransformer_TransformRow_InvalidAnswer(t *testing.T) {
	tr := NewTransformer()

	tests := []struct {
		name    string
		row     models.Row
		wantRaw string
	}{
		{
			name:    "Empty answer",
			row:     models.Row{Choices: models.Text("a|b"), Answer: models.Text("")},
			wantRaw: `""`,
		},
		{
			name:    "Absent answer",
			row:     models.Row{Choices: models.Text("a|b")},
			wantRaw: `""`,
		},
		{
			name:    "Out of range",
			row:     models.Row{Choices: models.Text("a|b"), Answer: models.Text("3")},
			wantRaw: `"3"`,
		},
		{
			name:    "No choices",
			row:     models.Row{Answer: models.Text("1")},
			wantRaw: `"1"`,
		},
		{
			name:    "Unparseable keeps raw text",
			row:     models.Row{Choices: models.Text("a|b"), Answer: models.Text(" maybe ")},
			wantRaw: `" maybe "`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tr.TransformRow(tt.row)
			if !errors.Is(err, ErrInvalidAnswer) {
				t.Fatalf("TransformRow error = %v, want ErrInvalidAnswer", err)
			}

			if !strings.HasSuffix(err.Error(), tt.wantRaw) {
				t.Errorf("error %q does not carry raw answer %s", err, tt.wantRaw)
			}
		})
	}
}

func TestIsCalc(t *testing.T) {
	truthy := []string{"Y", "yes", "TRUE", "1", "t", " True ", "y", "\x1fyes\x1c"}
	for _, v := range truthy {
		if !IsCalc(v) {
			t.Errorf("IsCalc(%q) = false, want true", v)
		}
	}

	falsy := []string{"0", "no", "", "n", "false", "2", "on", "yes please"}
	for _, v := range falsy {
		if IsCalc(v) {
			t.Errorf("IsCalc(%q) = true, want false", v)
		}
	}

	// An absent calc field reads as "".
	if IsCalc(models.Row{}.Calc.Raw()) {
		t.Error("absent calc field should be false")
	}
}
