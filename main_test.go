package main

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-montecarlo-raytracer/pkg/log"
)

func TestRenderCommand_WritesPPM(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.ppm")
	args := []string{"raytracer", "render", "--scene", "normals", "--width", "8", "--height", "4", "--spp", "2", "-o", out}
	if err := newApp().Run(args); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("Expected output file: %v", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if len(lines) != 3+8*4 {
		t.Fatalf("Expected %d lines, got %d", 3+8*4, len(lines))
	}
	if lines[0] != "P3" || lines[1] != "8 4" || lines[2] != "255" {
		t.Errorf("Unexpected header %q", lines[:3])
	}
	for _, line := range lines[3:] {
		if len(strings.Fields(line)) != 3 {
			t.Fatalf("Expected three components per pixel line, got %q", line)
		}
	}
}

func TestRenderCommand_Stdout(t *testing.T) {
	var stdout bytes.Buffer
	app := newApp()
	app.Writer = &stdout

	args := []string{"raytracer", "render", "--scene", "default", "--width", "4", "--height", "2", "--spp", "1", "--depth", "3", "-o", "-"}
	if err := app.Run(args); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.HasPrefix(stdout.String(), "P3\n4 2\n255\n") {
		t.Errorf("Unexpected stdout prefix %q", stdout.String())
	}
}

func TestRenderCommand_PNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "frame.png")
	args := []string{"raytracer", "render", "--scene", "defocus", "--width", "6", "--spp", "1", "--depth", "2", "--format", "png", "-o", out}
	if err := newApp().Run(args); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("Expected output file: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("Expected PNG signature")
	}
}

func TestRenderCommand_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains string
	}{
		{"unknown scene", []string{"--scene", "cornell"}, "unknown scene"},
		{"bad format", []string{"--format", "gif", "-o", "-"}, "unknown output format"},
		{"bad field of view", []string{"--vfov", "190"}, "field of view"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"raytracer", "render", "--width", "2", "--height", "1", "--spp", "1"}, tt.args...)
			err := newApp().Run(args)
			if err == nil || !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("Expected error containing %q, got %v", tt.contains, err)
			}
		})
	}
}

func TestListScenesCommand(t *testing.T) {
	var stdout bytes.Buffer
	app := newApp()
	app.Writer = &stdout

	if err := app.Run([]string{"raytracer", "list-scenes"}); err != nil {
		t.Fatalf("list-scenes failed: %v", err)
	}
	for _, name := range []string{"default", "defocus", "normals", "spheregrid"} {
		if !strings.Contains(stdout.String(), name) {
			t.Errorf("Expected %q in listing:\n%s", name, stdout.String())
		}
	}
}

func renderPPM(t *testing.T, extra ...string) string {
	t.Helper()
	var stdout bytes.Buffer
	app := newApp()
	app.Writer = &stdout

	args := append([]string{"raytracer", "render", "--scene", "default", "--width", "6", "--height", "3", "--spp", "2", "-o", "-"}, extra...)
	if err := app.Run(args); err != nil {
		t.Fatalf("render %v failed: %v", extra, err)
	}
	return stdout.String()
}

func TestRenderCommand_ZeroDepth(t *testing.T) {
	lines := strings.Split(strings.TrimSpace(renderPPM(t, "--depth", "0")), "\n")
	if len(lines) != 3+6*3 {
		t.Fatalf("Expected %d lines, got %d", 3+6*3, len(lines))
	}
	for _, line := range lines[3:] {
		if line != "0 0 0" {
			t.Fatalf("Expected black pixels at depth 0, got %q", line)
		}
	}
}

func TestRenderCommand_ZeroSeed(t *testing.T) {
	zero := renderPPM(t, "--seed", "0")
	if again := renderPPM(t, "--seed", "0"); again != zero {
		t.Error("Expected seed 0 to render deterministically")
	}
	if renderPPM(t) == zero {
		t.Error("Expected seed 0 to differ from the default seed")
	}
}

func TestVersionFlag(t *testing.T) {
	var stdout bytes.Buffer
	app := newApp()
	app.Writer = &stdout

	if err := app.Run([]string{"raytracer", "--version"}); err != nil {
		t.Fatalf("--version failed: %v", err)
	}
	if !strings.Contains(stdout.String(), app.Version) {
		t.Errorf("Expected version %q in output, got %q", app.Version, stdout.String())
	}
}

func TestVerboseFlags(t *testing.T) {
	for _, flag := range []string{"-v", "-vv"} {
		t.Run(flag, func(t *testing.T) {
			var stdout bytes.Buffer
			app := newApp()
			app.Writer = &stdout
			if err := app.Run([]string{"raytracer", flag, "list-scenes"}); err != nil {
				t.Fatalf("%s list-scenes failed: %v", flag, err)
			}
		})
	}
	log.SetLevel(log.Notice)
}
