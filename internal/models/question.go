// Package models defines data structures for question rows, records and diagnostics.
package models

// Source column names expected in the header row.
const (
	ColumnID          = "Question_int"
	ColumnQuestion    = "question"
	ColumnChoices     = "choices"
	ColumnAnswer      = "answer"
	ColumnExplanation = "back"
	ColumnCalc        = "calc"
)

// Fixed record discriminators.
const (
	TypeSingleChoice = "mc_single"
	DefaultDeckID    = "default"
)

// DebugColumns lists the columns copied verbatim into a Diagnostic.
var DebugColumns = []string{ColumnID, ColumnQuestion, ColumnChoices, ColumnAnswer, ColumnCalc}

// Field is a raw cell value that may be missing from a row.
type Field struct {
	Value   string
	Present bool
}

// Text returns a present field.
func Text(v string) Field {
	return Field{Value: v, Present: true}
}

// Raw returns the cell value, or "" when the field is absent.
func (f Field) Raw() string {
	if !f.Present {
		return ""
	}

	return f.Value
}

// Row is one data row of the source, bound to header names.
type Row struct {
	// Num is the 1-based line number counting the header as line 1.
	Num      int
	ID       Field
	Question Field
	Choices  Field
	Answer   Field
	Back     Field
	Calc     Field
}

// Lookup returns the field bound to a column name.
func (r Row) Lookup(column string) (Field, bool) {
	switch column {
	case ColumnID:
		return r.ID, true
	case ColumnQuestion:
		return r.Question, true
	case ColumnChoices:
		return r.Choices, true
	case ColumnAnswer:
		return r.Answer, true
	case ColumnExplanation:
		return r.Back, true
	case ColumnCalc:
		return r.Calc, true
	}

	return Field{}, false
}

// Set binds a value to a column name. Unknown columns are ignored.
func (r *Row) Set(column, value string) bool {
	f := Text(value)

	switch column {
	case ColumnID:
		r.ID = f
	case ColumnQuestion:
		r.Question = f
	case ColumnChoices:
		r.Choices = f
	case ColumnAnswer:
		r.Answer = f
	case ColumnExplanation:
		r.Back = f
	case ColumnCalc:
		r.Calc = f
	default:
		return false
	}

	return true
}

// Debug returns the raw values of DebugColumns.
func (r Row) Debug() map[string]string {
	out := make(map[string]string, len(DebugColumns))

	for _, col := range DebugColumns {
		f, _ := r.Lookup(col)
		out[col] = f.Raw()
	}

	return out
}

// Question is a validated single-correct-answer multiple choice record.
type Question struct {
	ID              string   `json:"id"`
	Prompt          string   `json:"prompt"`
	Choices         []string `json:"choices"`
	CorrectIndex    int      `json:"correct_index"`
	ExplanationHTML string   `json:"explanation_html"`
	Type            string   `json:"type"`
	DeckID          string   `json:"deck_id"`
	IsCalc          bool     `json:"is_calc"`
}

// Diagnostic describes a row that could not be converted into a Question.
type Diagnostic struct {
	Row    map[string]string `json:"row"`
	Error  string            `json:"error"`
	RowNum int               `json:"row_num"`
}
