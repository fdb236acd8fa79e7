package detection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awais-ramzan/log-security-analyzer/internal/domain"
)

// enumScan builds a scan of failed events with address/username pairs.
func enumScan(pairs [][2]string) *domain.Scan {
	lines := make([]domain.LogLine, len(pairs))
	for i := range pairs {
		lines[i] = domain.LogLine{Index: i, Raw: "failed password"}
	}
	scan := domain.NewScan(lines)
	for i, pair := range pairs {
		scan.Failed[i] = true
		scan.Addresses[i] = pair[0]
		scan.Usernames[i] = pair[1]
	}
	return scan
}

func TestUsernameDetector_FlagsEnumeration(t *testing.T) {
	scan := enumScan([][2]string{
		{"1.2.3.4", "root"},
		{"1.2.3.4", "admin"},
		{"1.2.3.4", "guest"},
		{"5.6.7.8", "root"},
	})

	findings := NewUsernameDetector(3).Detect(scan)
	require.Contains(t, findings, "1.2.3.4")
	assert.NotContains(t, findings, "5.6.7.8")

	finding := findings["1.2.3.4"]
	assert.Equal(t, 3, finding.UniqueUsernames)
	assert.Equal(t, []string{"admin", "guest", "root"}, finding.Usernames, "sorted ascending")
}

func TestUsernameDetector_Deduplicates(t *testing.T) {
	scan := enumScan([][2]string{
		{"1.2.3.4", "root"},
		{"1.2.3.4", "root"},
		{"1.2.3.4", "root"},
		{"1.2.3.4", "admin"},
	})

	findings := NewUsernameDetector(3).Detect(scan)
	assert.Empty(t, findings, "repeat attempts on one username are not enumeration")

	findings = NewUsernameDetector(2).Detect(scan)
	require.Contains(t, findings, "1.2.3.4")
	finding := findings["1.2.3.4"]
	assert.Equal(t, finding.UniqueUsernames, len(finding.Usernames))
	assert.Equal(t, []string{"admin", "root"}, finding.Usernames)
}

func TestUsernameDetector_MissingFieldsExcluded(t *testing.T) {
	scan := enumScan([][2]string{
		{"1.2.3.4", "root"},
		{"1.2.3.4", ""}, // extraction miss
		{"", "admin"},   // no address
		{"1.2.3.4", "admin"},
	})

	findings := NewUsernameDetector(2).Detect(scan)
	require.Contains(t, findings, "1.2.3.4")
	assert.Equal(t, 2, findings["1.2.3.4"].UniqueUsernames)
}

func TestUsernameDetector_NonFailedLinesExcluded(t *testing.T) {
	scan := enumScan([][2]string{
		{"1.2.3.4", "root"},
		{"1.2.3.4", "admin"},
		{"1.2.3.4", "guest"},
	})
	scan.Failed[2] = false

	findings := NewUsernameDetector(3).Detect(scan)
	assert.Empty(t, findings)
}

func TestUsernameDetector_EmptyScan(t *testing.T) {
	assert.Empty(t, NewUsernameDetector(3).Detect(domain.NewScan(nil)))
}
