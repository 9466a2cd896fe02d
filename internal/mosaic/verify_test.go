package mosaic

import (
	"errors"
	"strings"
	"testing"
)

func TestVerify(t *testing.T) {
	tests := []struct {
		name    string
		cells   []CellRect
		width   int
		height  int
		wantErr string
	}{
		{
			name:   "exact tiling",
			cells:  []CellRect{{0, 0, 2, 2}, {2, 0, 2, 2}, {0, 2, 4, 2}},
			width:  4,
			height: 4,
		},
		{
			name:    "gap",
			cells:   []CellRect{{0, 0, 2, 4}},
			width:   4,
			height:  4,
			wantErr: "pixel (2,0) not covered",
		},
		{
			name:    "overlap",
			cells:   []CellRect{{0, 0, 3, 4}, {2, 0, 2, 4}},
			width:   4,
			height:  4,
			wantErr: "pixel (2,0) covered by cells 0 and 1",
		},
		{
			name:    "outside",
			cells:   []CellRect{{0, 0, 5, 4}},
			width:   4,
			height:  4,
			wantErr: "outside 4x4 image",
		},
		{
			name:    "degenerate",
			cells:   []CellRect{{0, 0, 4, 4}, {4, 0, 0, 4}},
			width:   4,
			height:  4,
			wantErr: "has no area",
		},
		{
			name:   "empty image no cells",
			width:  0,
			height: 3,
		},
		{
			name:    "empty image with cells",
			cells:   []CellRect{{0, 0, 1, 1}},
			width:   0,
			height:  3,
			wantErr: "cells for empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Verify(tt.cells, tt.width, tt.height)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrInvariant) {
				t.Errorf("expected ErrInvariant, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}
