package observability

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSyncStats_Snapshot(t *testing.T) {
	req := require.New(t)
	stats := NewSyncStats()

	stats.IncrApplied()
	stats.IncrApplied()
	stats.IncrMalformed()
	stats.IncrDropped()

	snapshot := stats.Snapshot()
	req.Equal(uint64(2), snapshot.EventsApplied)
	req.Equal(uint64(1), snapshot.MalformedSegments)
	req.Equal(uint64(0), snapshot.UnknownActions)
	req.Equal(uint64(1), snapshot.DroppedEvents)
}

func TestSyncStats_ConcurrentIncrements(t *testing.T) {
	req := require.New(t)
	stats := NewSyncStats()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			stats.IncrApplied()
		}()
	}
	wg.Wait()

	req.Equal(uint64(50), stats.Snapshot().EventsApplied)
}
