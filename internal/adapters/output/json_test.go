package output

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awais-ramzan/log-security-analyzer/internal/domain"
)

func TestJSONRenderer(t *testing.T) {
	rendered, err := NewJSONRenderer().Render(sampleReport())
	require.NoError(t, err)

	var decoded domain.Report
	require.NoError(t, json.Unmarshal([]byte(rendered), &decoded))

	assert.Equal(t, "auth.log", decoded.LogFile)
	assert.Equal(t, 120, decoded.TotalLines)
	assert.Equal(t, 15, decoded.FailedLogins)
	assert.Equal(t, map[string]int{"1.2.3.4": 10, "5.6.7.8": 5}, decoded.BruteForce)

	require.Contains(t, decoded.WindowAttacks, "1.2.3.4")
	assert.Equal(t, 10, decoded.WindowAttacks["1.2.3.4"].Count)
	assert.Equal(t, 5.0, decoded.WindowAttacks["1.2.3.4"].WindowMinutes)

	require.Contains(t, decoded.UsernameEnum, "1.2.3.4")
	assert.Equal(t, []string{"admin", "guest", "root"}, decoded.UsernameEnum["1.2.3.4"].Usernames)

	require.NotNil(t, decoded.TimeRange)
	assert.True(t, decoded.TimeRange.Start.Equal(sampleReport().TimeRange.Start))
}

func TestJSONRenderer_OmitsAbsentTimeRange(t *testing.T) {
	report := &domain.Report{LogFile: "empty.log"}

	rendered, err := NewJSONRenderer().Render(report)
	require.NoError(t, err)

	assert.NotContains(t, rendered, "time_range")
}
