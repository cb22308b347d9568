package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// clearEnv removes MONTYHALL_* overrides for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("MONTYHALL_LOG_LEVEL", "")
	t.Setenv("MONTYHALL_SEED", "")
}

// writeStudyConfig writes a small study config whose output lands in dir.
func writeStudyConfig(t *testing.T, dir string, extra string) string {
	t.Helper()
	content := `
simulation:
  max_doors: 5
  three_door_trials: 10000
  other_trials: 1000
  seed: 42
output:
  path: ` + filepath.Join(dir, "montyHall.csv") + `
  trace_path: ` + filepath.Join(dir, "trace.jsonl") + `
` + extra
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	if cmd.Use != "montyhall" {
		t.Errorf("Use = %q, want %q", cmd.Use, "montyhall")
	}
	for _, name := range []string{"json", "config"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("missing --%s flag", name)
		}
	}
	for _, sub := range []string{"version", "theory", "config"} {
		found := false
		for _, c := range cmd.Commands() {
			if c.Name() == sub {
				found = true
			}
		}
		if !found {
			t.Errorf("missing %q subcommand", sub)
		}
	}
}

func TestRun_WritesTable(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	configPath := writeStudyConfig(t, dir, "")

	stdout, stderr, err := execute(t, "--config", configPath)
	if err != nil {
		t.Fatalf("Execute() error = %v (stderr: %s)", err, stderr)
	}

	f, err := os.Open(filepath.Join(dir, "montyHall.csv"))
	if err != nil {
		t.Fatalf("results file not written: %v", err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse results: %v", err)
	}

	if len(records) != 7 {
		t.Fatalf("got %d records, want header plus 6 rows", len(records))
	}
	if strings.Join(records[0], ",") != "Doors,Switch?,Theoretical,Experimental" {
		t.Errorf("header = %v", records[0])
	}

	wantDoors := []string{"3", "4", "5", "3", "4", "5"}
	wantLabels := []string{"Yes", "Yes", "Yes", "No", "No", "No"}
	for i, rec := range records[1:] {
		if rec[0] != wantDoors[i] || rec[1] != wantLabels[i] {
			t.Errorf("row %d = %v, want doors %s label %s", i, rec, wantDoors[i], wantLabels[i])
		}
	}

	if !strings.Contains(stdout, "Results written to") {
		t.Errorf("stdout missing completion line: %q", stdout)
	}
	if !strings.Contains(stderr, "experiment complete") {
		t.Errorf("stderr missing completion log: %q", stderr)
	}

	// No trace file below trace level
	if _, err := os.Stat(filepath.Join(dir, "trace.jsonl")); err == nil {
		t.Error("trace file should not be written at info level")
	}
}

func TestRun_JSONOutput(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	configPath := writeStudyConfig(t, dir, "")

	stdout, _, err := execute(t, "--config", configPath, "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result struct {
		Status string `json:"status"`
		Seed   int64  `json:"seed"`
		Games  int    `json:"games"`
		Rows   []struct {
			Doors        int     `json:"doors"`
			Strategy     string  `json:"strategy"`
			Theoretical  float64 `json:"theoretical"`
			Experimental float64 `json:"experimental"`
		} `json:"rows"`
	}
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("failed to parse JSON output: %v (%q)", err, stdout)
	}

	if result.Status != "complete" {
		t.Errorf("status = %q, want complete", result.Status)
	}
	if result.Seed != 42 {
		t.Errorf("seed = %d, want 42", result.Seed)
	}
	if result.Games != 24000 {
		t.Errorf("games = %d, want 24000", result.Games)
	}
	if len(result.Rows) != 6 {
		t.Fatalf("rows = %d, want 6", len(result.Rows))
	}
	if result.Rows[0].Strategy != "switch" || result.Rows[5].Strategy != "stay" {
		t.Errorf("unexpected strategy order: %+v", result.Rows)
	}
}

func TestRun_SameSeedSameResults(t *testing.T) {
	clearEnv(t)
	read := func() string {
		dir := t.TempDir()
		if _, _, err := execute(t, "--config", writeStudyConfig(t, dir, "")); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		data, err := os.ReadFile(filepath.Join(dir, "montyHall.csv"))
		if err != nil {
			t.Fatalf("failed to read results: %v", err)
		}
		return string(data)
	}

	if a, b := read(), read(); a != b {
		t.Errorf("runs with equal seeds differ:\n%s\n---\n%s", a, b)
	}
}

func TestRun_TraceLevelWritesGames(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	configPath := writeStudyConfig(t, dir, "logging:\n  level: trace\n")

	if _, stderr, err := execute(t, "--config", configPath); err != nil {
		t.Fatalf("Execute() error = %v (stderr: %s)", err, stderr)
	}

	data, err := os.ReadFile(filepath.Join(dir, "trace.jsonl"))
	if err != nil {
		t.Fatalf("trace file not written: %v", err)
	}
	lines := strings.Count(string(data), "\n")
	if lines != 24000 {
		t.Errorf("trace has %d lines, want 24000", lines)
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := "simulation:\n  max_doors: 2\noutput:\n  path: " + filepath.Join(dir, "out.csv") + "\n"
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	_, _, err := execute(t, "--config", configPath)
	if err == nil {
		t.Fatal("expected error for max_doors below 3")
	}
	if !strings.Contains(err.Error(), "max_doors") {
		t.Errorf("error = %q, want it to mention max_doors", err.Error())
	}
	if _, statErr := os.Stat(filepath.Join(dir, "out.csv")); statErr == nil {
		t.Error("no results file should be created for an invalid config")
	}
}

func TestRun_UnwritableOutput(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	// The output path names an existing directory.
	content := "output:\n  path: " + dir + "\n"
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, _, err := execute(t, "--config", configPath); err == nil {
		t.Fatal("expected error when the output path is a directory")
	}
}

func TestVersionCmd(t *testing.T) {
	stdout, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "montyhall version "+version) {
		t.Errorf("stdout = %q, want version line", stdout)
	}
}

func TestVersionCmd_JSON(t *testing.T) {
	stdout, _, err := execute(t, "version", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	var result map[string]string
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}
	if result["version"] != version {
		t.Errorf("version = %q, want %q", result["version"], version)
	}
}

func TestTheoryCmd(t *testing.T) {
	stdout, _, err := execute(t, "theory", "--max-doors", "4")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header plus 2 rows:\n%s", len(lines), stdout)
	}
	if !strings.Contains(lines[1], "0.6667") || !strings.Contains(lines[1], "0.3333") {
		t.Errorf("3-door line = %q", lines[1])
	}
	if !strings.Contains(lines[2], "0.7500") || !strings.Contains(lines[2], "0.2500") {
		t.Errorf("4-door line = %q", lines[2])
	}
}

func TestTheoryCmd_JSON(t *testing.T) {
	stdout, _, err := execute(t, "theory", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	var result struct {
		Count int `json:"count"`
		Rows  []struct {
			Doors  int     `json:"doors"`
			Switch float64 `json:"switch"`
			Stay   float64 `json:"stay"`
		} `json:"rows"`
	}
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}
	if result.Count != 28 {
		t.Errorf("count = %d, want 28", result.Count)
	}
	for _, r := range result.Rows {
		if sum := r.Switch + r.Stay; sum < 0.999999 || sum > 1.000001 {
			t.Errorf("doors=%d: switch+stay = %v", r.Doors, sum)
		}
	}
}

func TestTheoryCmd_RejectsSmallMax(t *testing.T) {
	if _, _, err := execute(t, "theory", "--max-doors", "2"); err == nil {
		t.Error("expected error for --max-doors 2")
	}
}

func TestConfigListCmd(t *testing.T) {
	clearEnv(t)
	stdout, _, err := execute(t, "config", "list")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"built-in defaults", "max_doors: 30", "three_door_trials: 10000", "path: montyHall.csv"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("config list output missing %q:\n%s", want, stdout)
		}
	}
}

func TestConfigListCmd_JSON(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	configPath := writeStudyConfig(t, dir, "")

	stdout, _, err := execute(t, "config", "list", "--json", "--config", configPath)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	var result struct {
		Simulation struct {
			MaxDoors int   `json:"max_doors"`
			Seed     int64 `json:"seed"`
		} `json:"simulation"`
	}
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}
	if result.Simulation.MaxDoors != 5 || result.Simulation.Seed != 42 {
		t.Errorf("simulation = %+v, want max_doors 5 seed 42", result.Simulation)
	}
}

func TestConfigValidateCmd(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	configPath := writeStudyConfig(t, dir, "")

	stdout, _, err := execute(t, "config", "validate", "--config", configPath)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "6 result rows") {
		t.Errorf("stdout = %q, want row count", stdout)
	}
}

func TestUnknownCommand(t *testing.T) {
	if _, _, err := execute(t, "bogus"); err == nil {
		t.Error("expected error for unknown command")
	}
}

func TestValueOrDefault(t *testing.T) {
	if got := valueOrDefault("", "fallback"); got != "fallback" {
		t.Errorf("valueOrDefault(\"\") = %q", got)
	}
	if got := valueOrDefault("set", "fallback"); got != "set" {
		t.Errorf("valueOrDefault(\"set\") = %q", got)
	}
}
