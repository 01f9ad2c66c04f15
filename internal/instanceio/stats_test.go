package instanceio

import (
	"strings"
	"testing"
	"time"

	"github.com/KristiansKaneps/nrp-algo-sub000/internal/constraint"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/search"
	"github.com/stretchr/testify/require"
)

func TestWriteStats(t *testing.T) {
	stats := search.NewScoreStatistics()
	stats.Record(10*time.Millisecond, constraint.Score{Strict: 0, Hard: -2, Soft: -5})
	stats.Record(20*time.Millisecond, constraint.Score{Strict: 0, Hard: -1, Soft: -5})

	var buf strings.Builder
	require.NoError(t, WriteStats(&buf, stats))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal(t, "Time;Strict;Hard;Soft", lines[0])
	require.Equal(t, "10;0;-2;-5", lines[1])
	require.Equal(t, "20;0;-1;-5", lines[2])
}
