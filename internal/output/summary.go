package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/wesleyorama2/surge/internal/injection"
)

// PlanReport is the machine-readable form of a schedule plan.
type PlanReport struct {
	Name          string          `json:"name,omitempty"`
	TotalUsers    int             `json:"totalUsers"`
	TotalDuration string          `json:"totalDuration"`
	Profiles      []ProfileReport `json:"profiles"`
	Preview       []string        `json:"preview,omitempty"`
	Arrivals      *ArrivalReport  `json:"arrivals,omitempty"`
}

// ProfileReport describes one profile in a plan.
type ProfileReport struct {
	Kind     string `json:"kind"`
	Users    int    `json:"users"`
	Duration string `json:"duration"`
}

// ArrivalReport carries arrival statistics in a plan.
type ArrivalReport struct {
	GapP50        string `json:"gapP50"`
	GapP90        string `json:"gapP90"`
	GapP99        string `json:"gapP99"`
	PeakPerSecond int64  `json:"peakPerSecond"`
}

// BuildPlanReport assembles a report from a schedule.
//
// previewCount limits how many leading offsets are included; the schedule
// is only ever consumed as a stream.
func BuildPlanReport(name string, s *injection.Schedule, previewCount int) *PlanReport {
	report := &PlanReport{
		Name:          name,
		TotalUsers:    s.TotalUsers(),
		TotalDuration: s.TotalDuration().String(),
	}

	for _, p := range s.Profiles() {
		report.Profiles = append(report.Profiles, ProfileReport{
			Kind:     string(p.Kind()),
			Users:    p.UserCount(),
			Duration: p.TotalDuration().String(),
		})
	}

	if previewCount > 0 {
		for _, off := range injection.Take(s.Offsets(), previewCount) {
			report.Preview = append(report.Preview, off.String())
		}
	}

	if stats := CollectStats(s); stats.TotalUsers > 1 {
		report.Arrivals = &ArrivalReport{
			GapP50:        stats.GapP50.String(),
			GapP90:        stats.GapP90.String(),
			GapP99:        stats.GapP99.String(),
			PeakPerSecond: stats.PeakPerSecond,
		}
	}

	return report
}

// Formatter renders plan reports as text or JSON.
type Formatter struct {
	scheme  *ColorScheme
	noColor bool
}

// NewFormatter creates a formatter. Pass noColor to strip ANSI codes.
func NewFormatter(noColor bool) *Formatter {
	scheme := DefaultColorScheme()
	if noColor {
		scheme = NoColorScheme()
	}
	return &Formatter{scheme: scheme, noColor: noColor}
}

// FormatText renders a human-readable plan summary.
func (f *Formatter) FormatText(report *PlanReport) string {
	var sb strings.Builder

	title := "Schedule plan"
	if report.Name != "" {
		title = fmt.Sprintf("Schedule plan: %s", report.Name)
	}
	sb.WriteString(f.scheme.Title.Sprint(title))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("%s %s users over %s\n",
		f.scheme.Label.Sprint("Total:"),
		f.scheme.Number.Sprintf("%d", report.TotalUsers),
		f.scheme.Duration.Sprint(report.TotalDuration)))
	sb.WriteString("\n")

	sb.WriteString(f.scheme.Label.Sprint("Profiles:"))
	sb.WriteString("\n")
	for i, p := range report.Profiles {
		sb.WriteString(fmt.Sprintf("  %d. %-14s %s users  %s\n",
			i+1,
			f.scheme.Kind.Sprint(p.Kind),
			f.scheme.Number.Sprintf("%6d", p.Users),
			f.scheme.Duration.Sprint(p.Duration)))
	}

	if len(report.Preview) > 0 {
		sb.WriteString("\n")
		sb.WriteString(f.scheme.Label.Sprintf("First %d arrivals:", len(report.Preview)))
		sb.WriteString("\n")
		sb.WriteString("  " + strings.Join(report.Preview, ", ") + "\n")
	}

	if report.Arrivals != nil {
		sb.WriteString("\n")
		sb.WriteString(f.scheme.Label.Sprint("Inter-arrival gaps:"))
		sb.WriteString(fmt.Sprintf(" p50=%s p90=%s p99=%s\n",
			f.scheme.Duration.Sprint(report.Arrivals.GapP50),
			f.scheme.Duration.Sprint(report.Arrivals.GapP90),
			f.scheme.Duration.Sprint(report.Arrivals.GapP99)))
		sb.WriteString(fmt.Sprintf("%s %s users\n",
			f.scheme.Label.Sprint("Busiest second:"),
			f.scheme.Highlight.Sprintf("%d", report.Arrivals.PeakPerSecond)))
	}

	return sb.String()
}

// FormatJSON renders the report as indented JSON.
func (f *Formatter) FormatJSON(report *PlanReport) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode plan report: %w", err)
	}
	return string(data), nil
}
