// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package column

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ErrNoHeader is returned when the input ends before a header row is read.
var ErrNoHeader = errors.New("input has no header row")

// Header holds the field names of the first CSV row and the position each
// name maps to. When a name repeats, the rightmost position wins.
type Header struct {
	fields []string
	index  map[string]int
}

// Record is one data row keyed by header field name.
type Record map[string]string

// NewHeader builds the name-to-position index for fields.
func NewHeader(fields []string) Header {
	h := Header{
		fields: append([]string(nil), fields...),
		index:  make(map[string]int, len(fields)),
	}
	for i, name := range h.fields {
		h.index[name] = i
	}
	return h
}

// Fields returns the header names in input order.
func (h Header) Fields() []string {
	return append([]string(nil), h.fields...)
}

// Index returns the column position for name. Matching is exact.
func (h Header) Index(name string) (int, bool) {
	i, ok := h.index[name]
	return i, ok
}

// Project maps row onto the header names. Positions the row does not reach
// produce no key, so a short row lacks its trailing fields.
func (h Header) Project(row []string) Record {
	rec := make(Record, len(h.index))
	for name, i := range h.index {
		if i < len(row) {
			rec[name] = row[i]
		}
	}
	return rec
}

// ReadHeader consumes the first record of r as the header row.
func ReadHeader(r *csv.Reader) (Header, error) {
	fields, err := r.Read()
	if err == io.EOF {
		return Header{}, ErrNoHeader
	}
	if err != nil {
		return Header{}, fmt.Errorf("parsing header: %w", err)
	}
	return NewHeader(fields), nil
}
