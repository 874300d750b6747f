package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/ai"
	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/cli"
	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/interfaces"
	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/planner"
	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/scorer"
)

// runCLI executes the root command with args and returns stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Flags bind package-level vars that persist between executions.
	cfgFile, verbose, format, output = "", false, "", ""
	missionFile, analysisName, concurrency, listenAddr = "", "", 0, ""
	t.Setenv(cli.DefaultAPIKeyEnv, "")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func testdata(name string) string {
	return filepath.Join("testdata", name)
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "leoplan dev") {
		t.Errorf("output = %q", out)
	}
}

func TestScore_JSON(t *testing.T) {
	out, err := runCLI(t, "score", "-m", testdata("mission.yml"), "-f", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got interfaces.ScoreResult
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}

	mission, err := planner.LoadMission(testdata("mission.yml"))
	if err != nil {
		t.Fatalf("loading mission: %v", err)
	}
	want := scorer.NewEngine().Score(&mission.Params)
	if got.Overall != want.Overall || got.Rating != want.Rating || got.Policy != scorer.PolicyHeuristic {
		t.Errorf("score = %+v, want %+v", got, want)
	}
}

func TestScore_Terminal(t *testing.T) {
	out, err := runCLI(t, "score", "-m", testdata("mission.yml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Mission Score:") {
		t.Errorf("terminal output missing score line:\n%s", out)
	}
}

func TestScore_Errors(t *testing.T) {
	if _, err := runCLI(t, "score", "-m", testdata("mission.yml"), "-f", "html"); err == nil {
		t.Error("expected error for unsupported format")
	}
	if _, err := runCLI(t, "score", "-m", testdata("missing.yml")); err == nil {
		t.Error("expected error for missing mission file")
	}
	if _, err := runCLI(t, "score", "-m", testdata("mission.yml"), "--config", testdata("missing.yml")); err == nil {
		t.Error("expected error for missing explicit config")
	}
}

func TestScore_ReferencePolicyFromConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "leoplan.yml")
	if err := os.WriteFile(cfg, []byte("scoring:\n  policy: reference\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	out, err := runCLI(t, "score", "-m", testdata("mission.yml"), "-f", "json", "--config", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got interfaces.ScoreResult
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if got.Policy != scorer.PolicyReference {
		t.Errorf("policy = %q, want %q", got.Policy, scorer.PolicyReference)
	}
}

func TestCost_JSON(t *testing.T) {
	out, err := runCLI(t, "cost", "-m", testdata("mission.yml"), "-f", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got interfaces.CostAnalysis
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(got.TotalByVendor) != 6 {
		t.Fatalf("vendors = %d, want 6", len(got.TotalByVendor))
	}
	for i := 1; i < len(got.TotalByVendor); i++ {
		if got.TotalByVendor[i].Total < got.TotalByVendor[i-1].Total {
			t.Errorf("vendors not ranked ascending at %d", i)
		}
	}
}

func TestCost_Workbook(t *testing.T) {
	if _, err := runCLI(t, "cost", "-m", testdata("mission.yml"), "-f", "xlsx"); err == nil {
		t.Error("expected error for xlsx without --output")
	}

	path := filepath.Join(t.TempDir(), "vendors.xlsx")
	if _, err := runCLI(t, "cost", "-m", testdata("mission.yml"), "-f", "xlsx", "-o", path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading workbook: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Error("workbook is not a zip archive")
	}
}

func TestAnalyze_Markdown(t *testing.T) {
	out, err := runCLI(t, "analyze", "-m", testdata("mission.yml"), "-f", "markdown", "--name", "EO Alpha")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"# EO Alpha", "## Scores", "## Vendor Costs", "## Mission Report", "Report: " + ai.SourceLocal} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestAnalyze_JSONWithoutKeyUsesLocalReport(t *testing.T) {
	out, err := runCLI(t, "analyze", "-m", testdata("mission.yml"), "-f", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var a interfaces.Analysis
	if err := json.Unmarshal([]byte(out), &a); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if a.Report == nil || a.Report.Source != ai.SourceLocal {
		t.Errorf("expected local report, got %+v", a.Report)
	}
	if a.Mission.LaunchSite != "Vandenberg SFB" {
		t.Errorf("launch site = %q", a.Mission.LaunchSite)
	}
}

func TestAnalyze_HTMLToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")
	out, err := runCLI(t, "analyze", "-m", testdata("mission.yml"), "-f", "html", "-o", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "" {
		t.Errorf("stdout should be empty when writing to a file, got %q", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	if !strings.HasPrefix(string(data), "<!doctype html>") {
		t.Error("expected an HTML document")
	}
}

func TestBatch_Terminal(t *testing.T) {
	out, err := runCLI(t, "batch", "-m", testdata("missions.yml"), "--concurrency", "2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "RANK") {
		t.Errorf("missing header:\n%s", out)
	}
	for _, name := range []string{"eo-constellation", "orbital-factory", "high-shell-broadband"} {
		if !strings.Contains(out, name) {
			t.Errorf("ranking missing %q", name)
		}
	}
}

func TestBatch_JSONRanked(t *testing.T) {
	out, err := runCLI(t, "batch", "-m", testdata("missions.yml"), "-f", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var analyses []interfaces.Analysis
	if err := json.Unmarshal([]byte(out), &analyses); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(analyses) != 3 {
		t.Fatalf("analyses = %d, want 3", len(analyses))
	}
	for i := 1; i < len(analyses); i++ {
		if analyses[i].Scores.Overall > analyses[i-1].Scores.Overall {
			t.Errorf("analyses not ranked by overall at %d", i)
		}
	}
}
