package main

import (
	"math"
	"testing"

	"github.com/vovakirdan/penguin-ski/internal/ski"
)

func TestHazardShare(t *testing.T) {
	tests := []struct {
		tier     ski.Tier
		expected float64
	}{
		{0, 0.15},
		{1, 0.27},
		{2, 0.30},
		{3, 0.35},
	}

	for _, tc := range tests {
		if got := hazardShare(tc.tier); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("hazardShare(%d) = %v, expected %v", tc.tier, got, tc.expected)
		}
	}

	for tier := ski.Tier(1); tier <= ski.MaxTier; tier++ {
		if hazardShare(tier) < hazardShare(tier-1) {
			t.Errorf("tier %d is safer than tier %d", tier, tier-1)
		}
	}
}

func TestSlopeMix(t *testing.T) {
	expected := "fish 55%, tree 20%, rock 15%, snowdrift 10%"
	if got := slopeMix(0); got != expected {
		t.Errorf("slopeMix(0) = %q, expected %q", got, expected)
	}
}
