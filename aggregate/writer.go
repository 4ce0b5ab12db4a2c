package aggregate

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/crosslevel/xalign/registry"
)

// WriteTable implements SPEC_FULL.md §6's Output contract: one line per
// entity in entity-index order, "<entity_name>\t<score>\n", with an
// undefined score printed as the literal "NaN". It is the only function
// in this module that writes to w — every other diagnostic in the
// pipeline goes to the logger, not to the table's destination.
func WriteTable(w io.Writer, reg *registry.Registry, flat *FlatNodeCorrScores) error {
	bw := bufio.NewWriter(w)

	for i := 0; i < flat.N; i++ {
		name, err := reg.Lookup(i)
		if err != nil {
			return fmt.Errorf("aggregate: writing row %d: %w", i, err)
		}

		score := flat.Scores[i]
		if math.IsNaN(score) {
			if _, err := fmt.Fprintf(bw, "%s\tNaN\n", name); err != nil {
				return err
			}
			continue
		}

		if _, err := fmt.Fprintf(bw, "%s\t%v\n", name, score); err != nil {
			return err
		}
	}

	return bw.Flush()
}
