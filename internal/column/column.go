// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package column extracts one named column from a CSV file into a plain text
// file. Each value is written as a block followed by a blank line; rows that
// lack the column produce a diagnostic line instead of a block.
package column

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Separator terminates every output block.
const Separator = "\n\n"

// Result counts the data rows seen during one extraction.
type Result struct {
	Written int
	Missing int
}

// Rows returns the number of data rows read.
func (r Result) Rows() int {
	return r.Written + r.Missing
}

// HasMissing reports whether any row lacked the column.
func (r Result) HasMissing() bool {
	return r.Missing > 0
}

// NotFoundMessage returns the diagnostic printed for a row lacking column.
func NotFoundMessage(column string) string {
	return fmt.Sprintf("Column '%s' not found in the CSV file.", column)
}

// Extract reads the CSV file at inputPath and writes the value of column for
// every data row to outputPath, truncating any existing file. The header is
// parsed before the output is created, so an input with no header leaves no
// output behind. Rows lacking the column are reported to diag, one line per
// row. A failure after the output is opened leaves what was written so far.
func Extract(inputPath, column, outputPath string, diag io.Writer) (res Result, err error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return Result{}, fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	r := newReader(in)
	header, err := ReadHeader(r)
	if err != nil {
		return Result{}, fmt.Errorf("reading %s: %w", inputPath, err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return Result{}, fmt.Errorf("creating output: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output %s: %w", outputPath, cerr)
		}
	}()

	bw := bufio.NewWriter(out)
	res, err = extractRows(r, header, column, bw, diag)
	if ferr := bw.Flush(); ferr != nil && err == nil {
		err = fmt.Errorf("writing %s: %w", outputPath, ferr)
	}
	if err != nil {
		return res, fmt.Errorf("extracting %q from %s: %w", column, inputPath, err)
	}
	return res, nil
}

// ExtractTo is the stream form of Extract: it reads CSV from r and writes
// blocks to w.
func ExtractTo(r io.Reader, column string, w, diag io.Writer) (Result, error) {
	cr := newReader(r)
	header, err := ReadHeader(cr)
	if err != nil {
		return Result{}, err
	}
	return extractRows(cr, header, column, w, diag)
}

func extractRows(r *csv.Reader, header Header, column string, w, diag io.Writer) (Result, error) {
	var res Result
	for {
		row, err := r.Read()
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return res, fmt.Errorf("reading row: %w", err)
		}

		value, ok := header.Project(row)[column]
		if !ok {
			fmt.Fprintln(diag, NotFoundMessage(column))
			res.Missing++
			continue
		}
		if _, err := io.WriteString(w, value+Separator); err != nil {
			return res, fmt.Errorf("writing value: %w", err)
		}
		res.Written++
	}
}
