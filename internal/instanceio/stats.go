package instanceio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/KristiansKaneps/nrp-algo-sub000/internal/search"
)

// WriteStats writes a semicolon-separated statistics file: header
// "Time;Strict;Hard;Soft" followed by one row per recorded sample.
func WriteStats(w io.Writer, stats *search.ScoreStatistics) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString("Time;Strict;Hard;Soft\n"); err != nil {
		return err
	}
	for _, sample := range stats.Samples() {
		if _, err := fmt.Fprintf(bw, "%d;%d;%d;%d\n", sample.ElapsedMillis, sample.Score.Strict, sample.Score.Hard, sample.Score.Soft); err != nil {
			return err
		}
	}
	return bw.Flush()
}
