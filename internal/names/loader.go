// Package names loads, merges and draws candidate names.
package names

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// errInvalidUTF8 marks a row that is not valid UTF-8.
var errInvalidUTF8 = errors.New("invalid UTF-8")

// Load parses single-column CSV data into trimmed, non-empty names.
//
// Each physical line is decoded on its own so a malformed row cannot swallow
// the rows after it. Rows that fail to decode are reported to warn and
// skipped; rows whose first field is blank are skipped silently. Only the
// first field of a row is kept.
func Load(source string, data []byte, warn io.Writer) []string {
	if warn == nil {
		warn = io.Discard
	}

	var names []string
	for i, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSuffix(line, []byte("\r"))

		record, err := parseRow(line)
		if err != nil {
			fmt.Fprintf(warn, "Warning: Failed to parse CSV row (%s line %d): %v\n", source, i+1, err)
			continue
		}
		if len(record) == 0 {
			continue
		}

		if name := strings.TrimSpace(record[0]); name != "" {
			names = append(names, name)
		}
	}

	return names
}

// parseRow decodes one CSV row. An empty line yields a nil record.
func parseRow(line []byte) ([]string, error) {
	if len(line) == 0 {
		return nil, nil
	}
	if !utf8.Valid(line) {
		return nil, errInvalidUTF8
	}

	r := csv.NewReader(strings.NewReader(string(line) + "\n"))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	record, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			return nil, perr.Err
		}
		return nil, err
	}
	return record, nil
}
