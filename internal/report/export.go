// Package report turns scoring output into exportable documents. Only
// delimited text lives here; rendering dashboards and PDF reports is
// the calling application's business.
package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/complize/selfassess/internal/scoring"
)

var gapHeader = []string{
	"section", "requirement_ref", "question_id", "question_text",
	"hint", "answer", "weight",
}

// WriteGapCSV writes a gap register as CSV, one row per gap, in the
// order the builder produced them.
func WriteGapCSV(w io.Writer, gaps []scoring.GapEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(gapHeader); err != nil {
		return err
	}
	for _, g := range gaps {
		rec := []string{
			g.Section,
			g.RequirementRef,
			g.Code,
			g.Text,
			g.Hint,
			g.Answer,
			strconv.FormatFloat(g.Weight, 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
