package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/crosslevel/xalign"
)

// dataHeader is the fixed column order of the data input (SPEC_FULL.md
// §6, "Data input").
var dataHeader = []string{"dataLevel", "dataReplicate", "vertex", "intensity"}

// vertexHeader is the fixed column order of the optional vertex-similarity
// input (SPEC_FULL.md §6, "Vertex input").
var vertexHeader = []string{"vertexLevel1", "vertexLevel2", "vertex1", "vertex2", "similarity"}

// DataRow is one parsed row of the data input: an entity's intensity at a
// given level and replicate.
type DataRow struct {
	Level     string
	Replicate string
	Entity    string
	Intensity float64
}

// VertexRow is one parsed row of the optional vertex-similarity input.
type VertexRow struct {
	Level1     string
	Level2     string
	Entity1    string
	Entity2    string
	Similarity float64
}

// ReadDataRows parses the required data input (SPEC_FULL.md §6) from r.
// Every row is validated eagerly; the first malformed row aborts the
// whole read with a *xalign.FatalError of KindInputFormat — this function
// never returns a partial []DataRow (SPEC_FULL.md §7).
func ReadDataRows(r io.Reader) ([]DataRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(dataHeader)

	header, err := cr.Read()
	if err != nil {
		return nil, xalign.NewFatalError(xalign.KindInputFormat, fmt.Errorf("%w: reading header: %v", ErrBadHeader, err))
	}
	if !headerMatches(header, dataHeader) {
		return nil, xalign.NewFatalError(xalign.KindInputFormat, fmt.Errorf("%w: got %v, want %v", ErrBadHeader, header, dataHeader))
	}

	var rows []DataRow
	for lineNo := 2; ; lineNo++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, xalign.NewFatalError(xalign.KindInputFormat, fmt.Errorf("%w: line %d: %v", ErrBadRow, lineNo, err))
		}

		intensity, err := strconv.ParseFloat(rec[3], 64)
		if err != nil {
			return nil, xalign.NewFatalError(xalign.KindInputFormat, fmt.Errorf("%w: line %d: intensity %q: %v", ErrBadRow, lineNo, rec[3], err))
		}

		rows = append(rows, DataRow{
			Level:     rec[0],
			Replicate: rec[1],
			Entity:    rec[2],
			Intensity: intensity,
		})
	}

	return rows, nil
}

// ReadVertexRows parses the optional vertex-similarity input
// (SPEC_FULL.md §6) from r. Same eager-validation discipline as
// ReadDataRows.
func ReadVertexRows(r io.Reader) ([]VertexRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(vertexHeader)

	header, err := cr.Read()
	if err != nil {
		return nil, xalign.NewFatalError(xalign.KindInputFormat, fmt.Errorf("%w: reading header: %v", ErrBadHeader, err))
	}
	if !headerMatches(header, vertexHeader) {
		return nil, xalign.NewFatalError(xalign.KindInputFormat, fmt.Errorf("%w: got %v, want %v", ErrBadHeader, header, vertexHeader))
	}

	var rows []VertexRow
	for lineNo := 2; ; lineNo++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, xalign.NewFatalError(xalign.KindInputFormat, fmt.Errorf("%w: line %d: %v", ErrBadRow, lineNo, err))
		}

		sim, err := strconv.ParseFloat(rec[4], 64)
		if err != nil {
			return nil, xalign.NewFatalError(xalign.KindInputFormat, fmt.Errorf("%w: line %d: similarity %q: %v", ErrBadRow, lineNo, rec[4], err))
		}

		rows = append(rows, VertexRow{
			Level1:     rec[0],
			Level2:     rec[1],
			Entity1:    rec[2],
			Entity2:    rec[3],
			Similarity: sim,
		})
	}

	return rows, nil
}

func headerMatches(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i, h := range want {
		if got[i] != h {
			return false
		}
	}

	return true
}
