package codec

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"busbar/grid"
)

// CSVCodec exports the branches of a system as a flat table for
// spreadsheet-oriented interop tools. Export only; the table drops the
// nested range fields and cannot rebuild a system.
type CSVCodec struct{}

// NewCSVCodec creates a new CSV codec
func NewCSVCodec() *CSVCodec {
	return &CSVCodec{}
}

// Format returns the codec format identifier
func (c *CSVCodec) Format() string {
	return "csv"
}

var csvHeader = []string{
	"kind", "name", "from", "to",
	"rating", "rating_up", "rating_down",
	"active_power_flow", "max_power_flow", "min_power_flow", "losses",
}

// Export writes one row per branch in insertion order
func (c *CSVCodec) Export(system *grid.System, w io.Writer) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, branch := range system.Branches() {
		rec, err := recordFromComponent(branch)
		if err != nil {
			return err
		}

		from, to := rec.FromBus, rec.ToBus
		if rec.Kind == string(grid.KindAreaInterchange) {
			from, to = rec.FromArea, rec.ToArea
		}

		row := []string{
			rec.Kind, rec.Name, from, to,
			csvFloat(rec.Rating), csvFloat(rec.RatingUp), csvFloat(rec.RatingDown),
			csvFloat(rec.ActivePowerFlow), csvFloat(rec.MaxPowerFlow), csvFloat(rec.MinPowerFlow),
			csvFloat(rec.Losses),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", rec.Name, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// csvFloat renders an optional magnitude, empty when unset
func csvFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'g', -1, 64)
}
