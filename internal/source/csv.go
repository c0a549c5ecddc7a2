// Package source reads spreadsheet exports into header-bound question rows.
package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"quizload/internal/models"
)

// Supported source encodings.
const (
	EncodingLatin1      = "latin1"
	EncodingWindows1252 = "windows-1252"
	EncodingUTF8        = "utf-8"
)

// firstDataRow is the line number of the first row after the header.
const firstDataRow = 2

// Source errors.
var (
	ErrUnknownEncoding  = errors.New("unknown source encoding")
	ErrInvalidDelimiter = errors.New("invalid delimiter")
	ErrMissingHeader    = errors.New("source has no header row")
)

// Options controls how the delimited file is decoded.
type Options struct {
	Encoding   string
	Delimiter  rune
	LazyQuotes bool
}

// DefaultOptions matches the spreadsheet export the loader was built for.
func DefaultOptions() Options {
	return Options{
		Encoding:   EncodingLatin1,
		Delimiter:  ',',
		LazyQuotes: true,
	}
}

// LookupEncoding resolves an encoding name. An empty name selects latin1.
func LookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", EncodingLatin1, "iso-8859-1":
		return charmap.ISO8859_1, nil
	case EncodingWindows1252, "cp1252":
		return charmap.Windows1252, nil
	case EncodingUTF8, "utf8":
		return unicode.UTF8BOM, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
}

// CSVSource yields rows of a delimited file with a header line.
type CSVSource struct {
	reader  *csv.Reader
	closer  io.Closer
	header  []string
	nextNum int
}

// Open opens path and reads its header row.
func Open(path string, opts Options) (*CSVSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open source: %w", err)
	}

	src, err := NewCSVSource(f, opts)
	if err != nil {
		f.Close()
		return nil, err
	}

	src.closer = f

	return src, nil
}

// NewCSVSource decodes r and reads its header row.
func NewCSVSource(r io.Reader, opts Options) (*CSVSource, error) {
	enc, err := LookupEncoding(opts.Encoding)
	if err != nil {
		return nil, err
	}

	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}

	if !validDelimiter(opts.Delimiter) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDelimiter, opts.Delimiter)
	}

	reader := csv.NewReader(transform.NewReader(r, enc.NewDecoder()))
	reader.Comma = opts.Delimiter
	reader.LazyQuotes = opts.LazyQuotes
	// Short and long rows are allowed; missing cells become absent fields.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrMissingHeader
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	header = append([]string(nil), header...)
	if len(header) > 0 {
		// A UTF-8 BOM decoded as latin1 becomes U+00EF U+00BB U+00BF.
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
		header[0] = strings.TrimPrefix(header[0], "\u00ef\u00bb\u00bf")
	}

	return &CSVSource{
		reader:  reader,
		header:  header,
		nextNum: firstDataRow,
	}, nil
}

// Header returns the column names of the source.
func (s *CSVSource) Header() []string {
	return append([]string(nil), s.header...)
}

// Next returns the next data row, or io.EOF.
func (s *CSVSource) Next() (models.Row, error) {
	record, err := s.reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return models.Row{}, io.EOF
		}

		return models.Row{}, fmt.Errorf("failed to parse row %d: %w", s.nextNum, err)
	}

	row := models.Row{Num: s.nextNum}
	s.nextNum++

	for i, col := range s.header {
		if i >= len(record) {
			break
		}

		row.Set(col, record[i])
	}

	return row, nil
}

// Close releases the underlying file, if any.
func (s *CSVSource) Close() error {
	if s.closer == nil {
		return nil
	}

	return s.closer.Close()
}

func validDelimiter(r rune) bool {
	return r != '"' && r != '\r' && r != '\n' && r != utf8.RuneError && utf8.ValidRune(r)
}
