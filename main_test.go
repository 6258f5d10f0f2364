package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"

	"github.com/wricardo/mazegame/game/config"
	"github.com/wricardo/mazegame/game/engine"
)

var clearableMaze = []string{
	"#####",
	"#G###",
	"#P.O#",
	"#####",
}

func TestConstants(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if AppName == "" {
		t.Error("AppName should not be empty")
	}

	expectedAppName := "Maze Game"
	if AppName != expectedAppName {
		t.Errorf("Expected app name %s, got %s", expectedAppName, AppName)
	}
}

func TestParseSteering(t *testing.T) {
	steering, err := parseSteering("1:east, 4:N,10:up")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := map[int]engine.Direction{1: engine.East, 4: engine.North, 10: engine.North}
	if len(steering) != len(expected) {
		t.Fatalf("Expected %d entries, got %d", len(expected), len(steering))
	}
	for tick, direction := range expected {
		if steering[tick] != direction {
			t.Errorf("Tick %d: expected %s, got %s", tick, direction, steering[tick])
		}
	}
}

func TestParseSteering_Empty(t *testing.T) {
	steering, err := parseSteering("  ")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(steering) != 0 {
		t.Errorf("Expected no steering, got %v", steering)
	}
}

func TestParseSteering_Invalid(t *testing.T) {
	tests := []string{"east", "0:east", "x:east", "3:sideways", "3:"}
	for _, input := range tests {
		if _, err := parseSteering(input); err == nil {
			t.Errorf("Expected error for %q", input)
		}
	}
}

func newClearableEngine(t *testing.T) *engine.Engine {
	t.Helper()
	e, err := engine.NewEngine(clearableMaze, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}
	return e
}

func TestSimulate_JSON(t *testing.T) {
	var out bytes.Buffer
	err := simulate(&out, newClearableEngine(t), 10, map[int]engine.Direction{1: engine.East}, true)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected simulation to stop after 2 frames, got %d", len(lines))
	}

	var first, last Frame
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("Invalid JSON frame: %v", err)
	}
	if err := json.Unmarshal([]byte(lines[1]), &last); err != nil {
		t.Fatalf("Invalid JSON frame: %v", err)
	}

	if first.Tick != 1 || first.Score != 10 || first.State != "running" {
		t.Errorf("Unexpected first frame: %+v", first)
	}
	if first.Player != (engine.Position{Row: 2, Column: 2}) {
		t.Errorf("Expected player at (2,2), got %+v", first.Player)
	}

	if last.State != "game_over" {
		t.Errorf("Expected game_over, got %s", last.State)
	}
	if last.Score != 60 || last.Dots != 0 || last.Pills != 0 {
		t.Errorf("Unexpected last frame: %+v", last)
	}
	if last.Facing != "east" {
		t.Errorf("Expected player facing east, got %s", last.Facing)
	}
	if len(last.Ghosts) != 1 {
		t.Errorf("Expected 1 ghost, got %d", len(last.Ghosts))
	}
}

func TestSimulate_Text(t *testing.T) {
	var out bytes.Buffer
	err := simulate(&out, newClearableEngine(t), 1, map[int]engine.Direction{1: engine.East}, false)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}

	line := strings.TrimSpace(out.String())
	if !strings.HasPrefix(line, "1 running player=(2,2) east  score=10 dots=0 pills=1 ghosts=") {
		t.Errorf("Unexpected trajectory line: %q", line)
	}
}

func writeMaze(t *testing.T, dir, filename string, cfg *engine.MazeConfig) {
	t.Helper()
	data, err := engine.EncodeMazeConfig(filename, cfg)
	if err != nil {
		t.Fatalf("Failed to encode maze: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0644); err != nil {
		t.Fatalf("Failed to write maze: %v", err)
	}
}

func TestLoadMazeConfig(t *testing.T) {
	dir := t.TempDir()
	writeMaze(t, dir, "tiny.yaml", &engine.MazeConfig{Name: "tiny", Layout: clearableMaze})

	t.Run("by name", func(t *testing.T) {
		cfg, err := loadMazeConfig(dir, "tiny")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if cfg.Name != "tiny" {
			t.Errorf("Expected tiny, got %s", cfg.Name)
		}
	})

	t.Run("by path", func(t *testing.T) {
		cfg, err := loadMazeConfig("/non/existent/path", filepath.Join(dir, "tiny.yaml"))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if cfg.Name != "tiny" {
			t.Errorf("Expected tiny, got %s", cfg.Name)
		}
	})

	t.Run("default from directory", func(t *testing.T) {
		cfg, err := loadMazeConfig(dir, "")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if cfg.Name != "tiny" {
			t.Errorf("Expected the only maze to be the default, got %s", cfg.Name)
		}
	})

	t.Run("built-in classic", func(t *testing.T) {
		cfg, err := loadMazeConfig(dir, "classic")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(cfg.Layout) != 31 {
			t.Errorf("Expected the 31 row classic maze, got %d rows", len(cfg.Layout))
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		cfg, err := loadMazeConfig("/non/existent/path", "")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if cfg.Name != "classic" {
			t.Errorf("Expected built-in classic, got %s", cfg.Name)
		}

		if _, err := loadMazeConfig("/non/existent/path", "tiny"); err == nil {
			t.Error("Expected error for a named maze without a config directory")
		}
	})

	t.Run("unknown maze", func(t *testing.T) {
		if _, err := loadMazeConfig(dir, "nope"); err == nil {
			t.Error("Expected error for unknown maze")
		}
	})
}

func TestWriteMazeList(t *testing.T) {
	var out bytes.Buffer
	err := writeMazeList(&out, []*config.ConfigInfo{
		{ConfigID: "classic", Name: "classic", Rows: 31, Columns: 28, Ghosts: 10, Dots: 241, PowerPills: 4, Description: "arcade"},
		{ConfigID: "tiny", Name: "tiny", Rows: 4, Columns: 5, Ghosts: 1, Dots: 1, PowerPills: 1},
	}, "tiny")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header and 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "ID") {
		t.Errorf("Expected header first, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "classic") || !strings.Contains(lines[1], "28x31") {
		t.Errorf("Expected classic first with its size, got %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "tiny") {
		t.Errorf("Expected tiny second, got %q", lines[2])
	}
	if strings.Contains(lines[1], "*") || !strings.Contains(lines[2], "*") {
		t.Errorf("Expected only tiny marked as default, got %q and %q", lines[1], lines[2])
	}
}

func TestCommand_Simulate(t *testing.T) {
	dir := t.TempDir()
	writeMaze(t, dir, "tiny.json", &engine.MazeConfig{Name: "tiny", Layout: clearableMaze, Seed: 7})

	var out bytes.Buffer
	cmd := newCommand()
	cmd.Writer = &out

	args := []string{"mazegame", "--config-dir", dir, "--maze", "tiny", "simulate", "--ticks", "5", "--steer", "1:east"}
	if err := cmd.Run(context.Background(), args); err != nil {
		t.Fatalf("Simulate command failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 trajectory lines, got %d: %q", len(lines), out.String())
	}
	if !strings.Contains(lines[1], "game_over") || !strings.Contains(lines[1], "score=60") {
		t.Errorf("Expected a cleared maze, got %q", lines[1])
	}
}

func TestCommand_Mazes(t *testing.T) {
	dir := t.TempDir()
	writeMaze(t, dir, "tiny.json", &engine.MazeConfig{Name: "tiny", Layout: clearableMaze})
	writeMaze(t, dir, "classic.yaml", engine.DefaultMazeConfig())

	var out bytes.Buffer
	cmd := newCommand()
	cmd.Writer = &out

	if err := cmd.Run(context.Background(), []string{"mazegame", "--config-dir", dir, "mazes"}); err != nil {
		t.Fatalf("Mazes command failed: %v", err)
	}

	listing := out.String()
	if !strings.Contains(listing, "classic") || !strings.Contains(listing, "tiny") {
		t.Errorf("Expected both mazes listed, got %q", listing)
	}
}

func TestRun_ReportsErrorsOnStderr(t *testing.T) {
	dir := t.TempDir()
	writeMaze(t, dir, "tiny.json", &engine.MazeConfig{Name: "tiny", Layout: clearableMaze})

	var stderr bytes.Buffer
	code := run(context.Background(), []string{"mazegame", "--config-dir", dir, "--maze", "nosuchmaze"}, &stderr)
	if code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), `maze "nosuchmaze"`) {
		t.Errorf("Expected the error on stderr, got %q", stderr.String())
	}
	if log.StandardLogger().Out == io.Discard {
		t.Error("Expected the logger output to be left alone when the game never started")
	}
}

func TestRun_Success(t *testing.T) {
	dir := t.TempDir()
	writeMaze(t, dir, "tiny.json", &engine.MazeConfig{Name: "tiny", Layout: clearableMaze})

	var stderr bytes.Buffer
	if code := run(context.Background(), []string{"mazegame", "--config-dir", dir, "mazes"}, &stderr); code != 0 {
		t.Errorf("Expected exit code 0, got %d: %s", code, stderr.String())
	}
	if stderr.Len() != 0 {
		t.Errorf("Expected nothing on stderr, got %q", stderr.String())
	}
}

func TestExportFilename(t *testing.T) {
	tests := []struct {
		name, mazeName, format string
		expected               string
		wantErr                bool
	}{
		{"", "classic", "json", "classic.json", false},
		{"mine", "classic", "yaml", "mine.yaml", false},
		{"mine", "classic", "YML", "mine.yaml", false},
		{"mine.yml", "classic", "json", "mine.yml", false},
		{"mine.txt", "classic", "json", "", true},
		{"mine", "classic", "toml", "", true},
		{"../mine", "classic", "json", "", true},
		{"", "", "json", "", true},
	}

	for _, test := range tests {
		got, err := exportFilename(test.name, test.mazeName, test.format)
		if test.wantErr {
			if err == nil {
				t.Errorf("exportFilename(%q, %q, %q): expected error, got %q", test.name, test.mazeName, test.format, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("exportFilename(%q, %q, %q): unexpected error %v", test.name, test.mazeName, test.format, err)
			continue
		}
		if got != test.expected {
			t.Errorf("exportFilename(%q, %q, %q) = %q, expected %q", test.name, test.mazeName, test.format, got, test.expected)
		}
	}
}

func TestCommand_MazesExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "mazes")

	runExport := func(args ...string) (string, error) {
		var out bytes.Buffer
		cmd := newCommand()
		cmd.Writer = &out
		err := cmd.Run(context.Background(), append([]string{"mazegame", "--config-dir", dir, "mazes", "export"}, args...))
		return out.String(), err
	}

	// no directory yet: the built-in classic maze is written and becomes the default
	out, err := runExport()
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if !strings.Contains(out, filepath.Join(dir, "classic.json")) || !strings.Contains(out, "default maze: classic") {
		t.Errorf("Unexpected export output: %q", out)
	}

	exported, err := engine.LoadMazeConfig(filepath.Join(dir, "classic.json"))
	if err != nil {
		t.Fatalf("Exported maze does not load: %v", err)
	}
	if len(exported.Layout) != len(engine.DefaultMazeConfig().Layout) {
		t.Errorf("Expected the classic layout, got %d rows", len(exported.Layout))
	}

	if _, err := runExport(); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("Expected an overwrite error, got %v", err)
	}
	if _, err := runExport("--force"); err != nil {
		t.Errorf("Expected --force to overwrite, got %v", err)
	}

	if _, err := runExport("--format", "yaml", "copy"); err != nil {
		t.Fatalf("YAML export failed: %v", err)
	}
	if _, err := engine.LoadMazeConfig(filepath.Join(dir, "copy.yaml")); err != nil {
		t.Errorf("Exported YAML maze does not load: %v", err)
	}
}
