package source

import (
	"io"

	"quizload/internal/models"
)

// MapSource yields rows from in-memory header-bound records, numbered from 2.
type MapSource struct {
	records []map[string]string
	pos     int
}

// FromMaps creates a MapSource. Keys missing from a record are absent fields.
func FromMaps(records ...map[string]string) *MapSource {
	return &MapSource{records: records}
}

// Next returns the next row, or io.EOF.
func (s *MapSource) Next() (models.Row, error) {
	if s.pos >= len(s.records) {
		return models.Row{}, io.EOF
	}

	row := models.Row{Num: s.pos + firstDataRow}
	for col, v := range s.records[s.pos] {
		row.Set(col, v)
	}

	s.pos++

	return row, nil
}
