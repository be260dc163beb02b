// Package outlets parses the outlet coordinate file: one outlet per line,
// three whitespace-separated integers `row col label`, one-based. The label
// is read and ignored; it exists only to let the file format double as a
// human-readable annotation.
package outlets

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hydrotools/lfp/fdmatrix"
)

// ErrMalformedOutletLine is wrapped and returned, alongside whatever
// outlets were parsed before it, when a non-empty line cannot be parsed as
// `row col label`. A short line or end of file is not an error: parsing
// simply stops there, matching the historical terminator convention.
var ErrMalformedOutletLine = errors.New("outlets: malformed outlet line")

// Parse reads one-based (row, col, label) triples from r and converts them
// to zero-based CellLocations. It returns every outlet successfully parsed
// before either EOF or a malformed line is reached. A malformed line also
// produces a non-nil error wrapping ErrMalformedOutletLine with the line
// number; callers that still have a usable outlet list may choose to log
// and continue rather than treat this as fatal.
func Parse(r io.Reader) ([]fdmatrix.CellLocation, error) {
	scanner := bufio.NewScanner(r)
	var out []fdmatrix.CellLocation
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}

		fields := strings.Fields(line)
		if len(fields) < 3 {
			break
		}

		row, err := strconv.Atoi(fields[0])
		if err != nil {
			return out, fmt.Errorf("%w: line %d: %v", ErrMalformedOutletLine, lineNum, err)
		}
		col, err := strconv.Atoi(fields[1])
		if err != nil {
			return out, fmt.Errorf("%w: line %d: %v", ErrMalformedOutletLine, lineNum, err)
		}
		// fields[2] is the label; parsed only to validate the line shape.
		if _, err := strconv.Atoi(fields[2]); err != nil {
			return out, fmt.Errorf("%w: line %d: %v", ErrMalformedOutletLine, lineNum, err)
		}

		out = append(out, fdmatrix.CellLocation{Row: row - 1, Col: col - 1})
	}

	if err := scanner.Err(); err != nil {
		return out, fmt.Errorf("%w: %v", ErrMalformedOutletLine, err)
	}
	return out, nil
}
