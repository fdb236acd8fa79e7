// Package output renders finished reports for terminals, files, and machine
// consumers.
package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/awais-ramzan/log-security-analyzer/internal/domain"
	"github.com/awais-ramzan/log-security-analyzer/pkg/sanitize"
)

const (
	timeLayout = "2006-01-02 15:04:05"
	ruleWidth  = 60
	// maxListedUsernames caps the names shown per enumeration finding.
	maxListedUsernames = 10
)

var (
	colorPrimary  = lipgloss.Color("#00ff41")
	colorCritical = lipgloss.Color("#ff3333")
	colorWarning  = lipgloss.Color("#ffb000")
	colorMuted    = lipgloss.Color("#707070")

	titleStyle    = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	sectionStyle  = lipgloss.NewStyle().Foreground(colorPrimary)
	criticalStyle = lipgloss.NewStyle().Foreground(colorCritical).Bold(true)
	warningStyle  = lipgloss.NewStyle().Foreground(colorWarning)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
)

// TextRenderer produces the sectioned human-readable report. Sections with
// nothing to say are omitted; when no detector flagged anything a short
// all-clear section is printed instead. Tokens lifted from log content pass
// through sanitize before reaching the terminal.
type TextRenderer struct{}

// NewTextRenderer creates a text renderer.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// Render formats the report as styled text.
func (r *TextRenderer) Render(report *domain.Report) (string, error) {
	var b strings.Builder
	rule := mutedStyle.Render(strings.Repeat("=", ruleWidth))

	b.WriteString(rule + "\n")
	b.WriteString(titleStyle.Render("Log Security Analysis Report") + "\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Generated: %s\n", report.GeneratedAt.Format(timeLayout))
	fmt.Fprintf(&b, "Log File: %s\n", sanitize.String(report.LogFile, sanitize.DefaultMaxDisplayLength))
	fmt.Fprintf(&b, "Total Entries Analyzed: %d\n", report.TotalLines)
	if report.TimeRange != nil {
		fmt.Fprintf(&b, "Time Range: %s - %s\n",
			report.TimeRange.Start.Format(timeLayout),
			report.TimeRange.End.Format(timeLayout))
	}
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("=== Security Summary ===") + "\n")
	fmt.Fprintf(&b, "Failed Login Attempts: %d\n", report.FailedLogins)
	fmt.Fprintf(&b, "Potential Brute Force Attacks: %d\n", len(report.BruteForce))
	if len(report.WindowAttacks) > 0 {
		fmt.Fprintf(&b, "Time-Window Attacks (%s min): %d\n",
			formatMinutes(anyWindowMinutes(report.WindowAttacks)), len(report.WindowAttacks))
	}
	if len(report.UsernameEnum) > 0 {
		fmt.Fprintf(&b, "Multiple Username Attempts: %d\n", len(report.UsernameEnum))
	}
	b.WriteString("\n")

	r.renderFailures(&b, report)
	r.renderWindowAttacks(&b, report)
	r.renderUsernameEnum(&b, report)
	r.renderBruteForce(&b, report)

	if report.Clean() {
		b.WriteString(sectionStyle.Render("=== Security Status ===") + "\n")
		b.WriteString("No brute force attacks detected\n\n")
	}

	b.WriteString(rule + "\n")
	return b.String(), nil
}

func (r *TextRenderer) renderFailures(b *strings.Builder, report *domain.Report) {
	if len(report.FailuresByAddress) == 0 {
		return
	}
	b.WriteString(sectionStyle.Render("=== Failed Logins by IP ===") + "\n")
	for _, addr := range addrsByCountDesc(report.FailuresByAddress) {
		fmt.Fprintf(b, "  %s: %d failed attempts\n",
			sanitize.Terminal(addr), report.FailuresByAddress[addr])
	}
	b.WriteString("\n")
}

func (r *TextRenderer) renderWindowAttacks(b *strings.Builder, report *domain.Report) {
	if len(report.WindowAttacks) == 0 {
		return
	}
	b.WriteString(criticalStyle.Render("=== TIME-WINDOW BRUTE FORCE ATTACKS ===") + "\n")

	addrs := make([]string, 0, len(report.WindowAttacks))
	for addr := range report.WindowAttacks {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool {
		fi, fj := report.WindowAttacks[addrs[i]], report.WindowAttacks[addrs[j]]
		if fi.Count != fj.Count {
			return fi.Count > fj.Count
		}
		return addrs[i] < addrs[j]
	})

	for _, addr := range addrs {
		finding := report.WindowAttacks[addr]
		fmt.Fprintf(b, "  IP: %s\n", sanitize.Terminal(addr))
		fmt.Fprintf(b, "     Failed Attempts: %d in %s minutes\n",
			finding.Count, formatMinutes(finding.WindowMinutes))
		fmt.Fprintf(b, "     Window Start: %s\n", finding.WindowStart.Format(timeLayout))
	}
	b.WriteString("\n")
}

func (r *TextRenderer) renderUsernameEnum(b *strings.Builder, report *domain.Report) {
	if len(report.UsernameEnum) == 0 {
		return
	}
	b.WriteString(warningStyle.Render("=== MULTIPLE USERNAME ATTEMPTS ===") + "\n")

	addrs := make([]string, 0, len(report.UsernameEnum))
	for addr := range report.UsernameEnum {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool {
		fi, fj := report.UsernameEnum[addrs[i]], report.UsernameEnum[addrs[j]]
		if fi.UniqueUsernames != fj.UniqueUsernames {
			return fi.UniqueUsernames > fj.UniqueUsernames
		}
		return addrs[i] < addrs[j]
	})

	for _, addr := range addrs {
		finding := report.UsernameEnum[addr]
		fmt.Fprintf(b, "  IP: %s\n", sanitize.Terminal(addr))
		fmt.Fprintf(b, "     Unique Usernames Attempted: %d\n", finding.UniqueUsernames)

		listed := finding.Usernames
		more := 0
		if len(listed) > maxListedUsernames {
			more = len(listed) - maxListedUsernames
			listed = listed[:maxListedUsernames]
		}
		shown := make([]string, len(listed))
		for i, username := range listed {
			shown[i] = sanitize.String(username, 64)
		}
		fmt.Fprintf(b, "     Usernames: %s\n", strings.Join(shown, ", "))
		if more > 0 {
			fmt.Fprintf(b, "     ... and %d more\n", more)
		}
	}
	b.WriteString("\n")
}

func (r *TextRenderer) renderBruteForce(b *strings.Builder, report *domain.Report) {
	if len(report.BruteForce) == 0 {
		return
	}
	b.WriteString(criticalStyle.Render("=== BRUTE FORCE ATTACKS (Threshold) ===") + "\n")
	for _, addr := range addrsByCountDesc(report.BruteForce) {
		fmt.Fprintf(b, "  IP: %s\n", sanitize.Terminal(addr))
		fmt.Fprintf(b, "     Failed Attempts: %d\n", report.BruteForce[addr])
	}
	b.WriteString("\n")
}

// addrsByCountDesc orders addresses by descending count, address ascending
// as the tie-break so the layout is deterministic.
func addrsByCountDesc(counts map[string]int) []string {
	addrs := make([]string, 0, len(counts))
	for addr := range counts {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool {
		if counts[addrs[i]] != counts[addrs[j]] {
			return counts[addrs[i]] > counts[addrs[j]]
		}
		return addrs[i] < addrs[j]
	})
	return addrs
}

func anyWindowMinutes(findings map[string]domain.WindowFinding) float64 {
	for _, f := range findings {
		return f.WindowMinutes
	}
	return 0
}

func formatMinutes(minutes float64) string {
	if minutes == float64(int64(minutes)) {
		return fmt.Sprintf("%d", int64(minutes))
	}
	return fmt.Sprintf("%g", minutes)
}
