package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScan_IndexAligned(t *testing.T) {
	lines := []LogLine{
		{Index: 0, Raw: "first"},
		{Index: 1, Raw: "second"},
		{Index: 2, Raw: "third"},
	}
	scan := NewScan(lines)

	require.Equal(t, 3, scan.Len())
	assert.Len(t, scan.Failed, 3)
	assert.Len(t, scan.Addresses, 3)
	assert.Len(t, scan.Timestamps, 3)
	assert.Len(t, scan.Usernames, 3)

	// Absence defaults: nothing populated yet.
	for i := range lines {
		assert.False(t, scan.Failed[i])
		assert.Empty(t, scan.Addresses[i])
		assert.True(t, scan.Timestamps[i].IsZero())
		assert.Empty(t, scan.Usernames[i])
	}
}

func TestScan_FailedCount(t *testing.T) {
	scan := NewScan([]LogLine{{0, "a"}, {1, "b"}, {2, "c"}})
	scan.Failed[0] = true
	scan.Failed[2] = true
	assert.Equal(t, 2, scan.FailedCount())
}

func TestScan_TimeRange(t *testing.T) {
	scan := NewScan([]LogLine{{0, "a"}, {1, "b"}, {2, "c"}, {3, "d"}})

	_, ok := scan.TimeRange()
	assert.False(t, ok, "no timestamps parsed yet")

	later := time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)
	earlier := time.Date(2025, 3, 9, 9, 30, 0, 0, time.UTC)
	scan.Timestamps[1] = later
	scan.Timestamps[3] = earlier

	tr, ok := scan.TimeRange()
	require.True(t, ok)
	assert.Equal(t, earlier, tr.Start)
	assert.Equal(t, later, tr.End)
}

func TestScan_TimeRangeSingle(t *testing.T) {
	scan := NewScan([]LogLine{{0, "a"}})
	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	scan.Timestamps[0] = ts

	tr, ok := scan.TimeRange()
	require.True(t, ok)
	assert.Equal(t, ts, tr.Start)
	assert.Equal(t, ts, tr.End)
}

func TestReport_Clean(t *testing.T) {
	report := &Report{}
	assert.True(t, report.Clean())

	report.BruteForce = map[string]int{"1.2.3.4": 5}
	assert.False(t, report.Clean())
}
