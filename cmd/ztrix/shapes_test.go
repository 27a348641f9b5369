package main

import (
	"strings"
	"testing"

	"github.com/vovakirdan/ztrix/internal/config"
	"github.com/vovakirdan/ztrix/internal/games/ztrix"
	"github.com/vovakirdan/ztrix/internal/geom"
)

func TestDrawStateFlipsRows(t *testing.T) {
	shapes, err := ztrix.LoadShapes(config.DefaultZtrixConfig())
	if err != nil {
		t.Fatalf("LoadShapes() error = %v", err)
	}

	var tShape ztrix.Shape
	for _, s := range shapes {
		if s.Name == "T" {
			tShape = s
		}
	}
	if tShape.Name == "" {
		t.Fatal("default config has no T piece")
	}

	// T spawns flat with its nub pointing up, so the top row holds one cell
	lines := strings.Split(drawState(tShape, tShape.State(geom.R0)), "\n")
	if len(lines) != tShape.Box {
		t.Fatalf("drawState() has %d lines, expected %d", len(lines), tShape.Box)
	}
	if got := strings.Count(lines[0], "[]"); got != 1 {
		t.Errorf("top row has %d cells, expected 1: %q", got, lines[0])
	}
	if got := strings.Count(lines[1], "[]"); got != 3 {
		t.Errorf("middle row has %d cells, expected 3: %q", got, lines[1])
	}
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"ztrix", "ztrix", true},
		{"marathon", "ztrix", true},
		{"sprint", "ztrix_sprint", true},
		{"ztrix_ultra", "ztrix_ultra", true},
		{"pong", "", false},
	}

	for _, tc := range tests {
		got, err := resolveMode(tc.input)
		if got != tc.expected || (err == nil) != tc.ok {
			t.Errorf("resolveMode(%q) = %q, %v, expected %q, ok=%v", tc.input, got, err, tc.expected, tc.ok)
		}
	}
}
