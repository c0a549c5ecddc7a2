// Package metadata stamps generated reports with a status block and content hash.
package metadata

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// TagStart opens the status block.
	TagStart = "<!-- LOAD_STATUS_START"
	// TagEnd closes the status block.
	TagEnd = "LOAD_STATUS_END -->"
)

// Status verification errors.
var (
	ErrNoStatusBlock = errors.New("no status block found")
	ErrNoHashFound   = errors.New("no hash found in status block")
	ErrHashMismatch  = errors.New("hash mismatch")
)

// Status summarizes the batch a report was generated from.
type Status struct {
	Hash     string
	Rows     int
	Rejected int
	Clean    bool
}

// Extract splits content into its status block and the report body. The body
// has trailing newlines removed and is what the hash covers. A missing or
// unterminated block yields a nil Status.
func Extract(content string) (*Status, string) {
	start := strings.Index(content, TagStart)
	if start < 0 {
		return nil, strings.TrimRight(content, "\n")
	}

	fields, after, ok := strings.Cut(content[start+len(TagStart):], TagEnd)
	if !ok {
		return nil, strings.TrimRight(content, "\n")
	}

	return parseFields(fields), strings.TrimRight(content[:start]+after, "\n")
}

// parseFields reads "KEY: value" lines. Unknown keys, GENERATED_AT among
// them, are informational and skipped.
func parseFields(fields string) *Status {
	st := &Status{}

	for _, line := range strings.Split(fields, "\n") {
		key, val, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}

		val = strings.TrimSpace(val)

		switch strings.TrimSpace(key) {
		case "CLEAN":
			st.Clean = strings.EqualFold(val, "TRUE")
		case "ROWS":
			st.Rows, _ = strconv.Atoi(val)
		case "REJECTED":
			st.Rejected, _ = strconv.Atoi(val)
		case "HASH":
			st.Hash = val
		}
	}

	return st
}

// CalculateHash returns the hex SHA-256 of body. Callers pass the body from
// Extract, not a stamped report.
func CalculateHash(body string) string {
	sum := sha256.Sum256([]byte(body))
	return hex.EncodeToString(sum[:])
}

// Stamp replaces any status block in content with a fresh one for st.
// st.Hash is ignored; the hash is computed from the report body.
func Stamp(content string, st Status) string {
	_, body := Extract(content)

	var sb strings.Builder
	sb.WriteString(body)
	sb.WriteString("\n\n" + TagStart + "\n")
	fmt.Fprintf(&sb, "CLEAN: %s\n", strings.ToUpper(strconv.FormatBool(st.Clean)))
	fmt.Fprintf(&sb, "ROWS: %d\n", st.Rows)
	fmt.Fprintf(&sb, "REJECTED: %d\n", st.Rejected)
	fmt.Fprintf(&sb, "GENERATED_AT: %s\n", time.Now().UTC().Format(time.RFC3339))
	fmt.Fprintf(&sb, "HASH: %s\n", CalculateHash(body))
	sb.WriteString(TagEnd)

	return sb.String()
}

// Verify checks that content still matches the hash in its status block.
func Verify(content string) (bool, error) {
	st, body := Extract(content)
	if st == nil {
		return false, ErrNoStatusBlock
	}

	if st.Hash == "" {
		return false, ErrNoHashFound
	}

	if got := CalculateHash(body); got != st.Hash {
		return false, fmt.Errorf("%w: expected %s, got %s", ErrHashMismatch, st.Hash, got)
	}

	return true, nil
}
