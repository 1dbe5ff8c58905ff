// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package column

import (
	"encoding/csv"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// ErrInvalidUTF8 is reported when input bytes are not valid UTF-8.
var ErrInvalidUTF8 = encoding.ErrInvalidUTF8

// newReader wraps r in a UTF-8 validating transform and a comma-delimited
// CSV reader that accepts rows of any width. Stray quotes inside a field are
// kept as literal characters.
func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(transform.NewReader(r, encoding.UTF8Validator))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr
}
