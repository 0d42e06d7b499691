package model_test

import (
	"testing"

	"github.com/khosokawa0716/family-album/pkg/internal/model"
)

// TestCanTransition 生命周期状态机：Purged 为终态.
func TestCanTransition(t *testing.T) {
	tests := []struct {
		from model.PictureStatus
		to   model.PictureStatus
		want bool
	}{
		{model.StatusActive, model.StatusDeleted, true},
		{model.StatusActive, model.StatusPurged, false},
		{model.StatusActive, model.StatusActive, false},
		{model.StatusDeleted, model.StatusActive, true},
		{model.StatusDeleted, model.StatusPurged, true},
		{model.StatusDeleted, model.StatusDeleted, false},
		{model.StatusPurged, model.StatusActive, false},
		{model.StatusPurged, model.StatusDeleted, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransition(tt.to); got != tt.want {
			t.Errorf("%s -> %s: got %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
