package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDue(t *testing.T) {
	tests := []struct {
		liveTime, interval uint64
		want               bool
	}{
		{0, 3, true},
		{1, 3, false},
		{2, 3, false},
		{3, 3, true},
		{7, 1, true},
		{7, 0, true},
		{10, 5, true},
		{11, 5, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Due(tt.liveTime, tt.interval), "Due(%d, %d)", tt.liveTime, tt.interval)
	}
}

func TestParseTargetStrategy(t *testing.T) {
	for _, s := range []TargetStrategy{StrategyBalanced, StrategyNearest, StrategyWeakest, StrategyThreat} {
		got, err := ParseTargetStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	got, err := ParseTargetStrategy("")
	require.NoError(t, err)
	assert.Equal(t, StrategyBalanced, got)

	_, err = ParseTargetStrategy("random")
	assert.Error(t, err)

	assert.Equal(t, "unknown", TargetStrategy(99).String())
}
