package main

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
)

func TestResolveLevel(t *testing.T) {
	levels := []breakout.LevelSpec{{ID: "standard"}, {ID: "gaps"}, {ID: "3"}}
	tests := []struct {
		arg     string
		want    int
		wantErr bool
	}{
		{"standard", 0, false},
		{"gaps", 1, false},
		{"2", 1, false},
		{"3", 2, false}, // ids win over positions
		{"0", 0, true},
		{"4", 0, true},
		{"missing", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := resolveLevel(levels, tt.arg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolveLevel(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("resolveLevel(%q) = %d, expected %d", tt.arg, got, tt.want)
			}
		})
	}
}

func TestDescribeLevel(t *testing.T) {
	spec := breakout.LevelSpec{Grid: [][]int{{1, 2, 0}, {3, 3, 1}}}
	if got, want := describeLevel(spec), "3x2, 3 bricks, 2 solid"; got != want {
		t.Errorf("describeLevel() = %q, expected %q", got, want)
	}
}
