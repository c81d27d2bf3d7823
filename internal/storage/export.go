package storage

import (
	"fmt"
	"io"
	"time"

	"github.com/gocarina/gocsv"
)

// csvRecord is one exported history row.
type csvRecord struct {
	Rank      int    `csv:"rank"`
	Score     int    `csv:"score"`
	Length    int    `csv:"length"`
	Ticks     uint64 `csv:"ticks"`
	Cause     string `csv:"cause"`
	CreatedAt string `csv:"created_at"`
}

// ExportCSV writes entries as CSV with a header row, ranked in the given order.
func ExportCSV(w io.Writer, entries []ScoreEntry) error {
	records := make([]*csvRecord, len(entries))
	for i, e := range entries {
		records[i] = &csvRecord{
			Rank:      i + 1,
			Score:     e.Score,
			Length:    e.Length,
			Ticks:     e.Ticks,
			Cause:     e.Cause,
			CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	if err := gocsv.Marshal(records, w); err != nil {
		return fmt.Errorf("storage: export csv: %w", err)
	}
	return nil
}
