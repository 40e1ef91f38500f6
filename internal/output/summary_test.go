package output

import (
	"strings"
	"testing"
	"time"

	"github.com/wesleyorama2/surge/internal/injection"
)

func samplePlan(t *testing.T) *PlanReport {
	t.Helper()
	b, err := injection.NewBurst(2)
	if err != nil {
		t.Fatalf("NewBurst() error = %v", err)
	}
	r, err := injection.NewRamp(3, 10*time.Second)
	if err != nil {
		t.Fatalf("NewRamp() error = %v", err)
	}
	return BuildPlanReport("demo", injection.New(b, r), 5)
}

func TestBuildPlanReport(t *testing.T) {
	report := samplePlan(t)

	if report.Name != "demo" {
		t.Errorf("Name = %q, want %q", report.Name, "demo")
	}
	if report.TotalUsers != 5 {
		t.Errorf("TotalUsers = %d, want 5", report.TotalUsers)
	}
	if len(report.Profiles) != 2 {
		t.Fatalf("len(Profiles) = %d, want 2", len(report.Profiles))
	}
	if report.Profiles[0].Kind != "burst" || report.Profiles[1].Kind != "ramp" {
		t.Errorf("profile kinds = %s/%s, want burst/ramp",
			report.Profiles[0].Kind, report.Profiles[1].Kind)
	}
	if len(report.Preview) != 5 {
		t.Errorf("len(Preview) = %d, want 5", len(report.Preview))
	}
	if report.Preview[0] != "0s" {
		t.Errorf("Preview[0] = %q, want \"0s\"", report.Preview[0])
	}
	if report.Arrivals == nil {
		t.Fatal("Arrivals = nil, want stats")
	}
}

func TestBuildPlanReport_NoPreview(t *testing.T) {
	b, err := injection.NewBurst(2)
	if err != nil {
		t.Fatalf("NewBurst() error = %v", err)
	}

	report := BuildPlanReport("", injection.New(b), 0)
	if len(report.Preview) != 0 {
		t.Errorf("len(Preview) = %d, want 0", len(report.Preview))
	}
}

func TestFormatText(t *testing.T) {
	f := NewFormatter(true)
	text := f.FormatText(samplePlan(t))

	for _, want := range []string{
		"Schedule plan: demo",
		"5 users",
		"burst",
		"ramp",
		"First 5 arrivals",
		"Busiest second",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("FormatText() missing %q in:\n%s", want, text)
		}
	}
}

func TestFormatJSON(t *testing.T) {
	f := NewFormatter(true)
	out, err := f.FormatJSON(samplePlan(t))
	if err != nil {
		t.Fatalf("FormatJSON() error = %v", err)
	}
	for _, want := range []string{`"totalUsers": 5`, `"kind": "burst"`} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatJSON() missing %q in:\n%s", want, out)
		}
	}
}
