package status_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/turnbattle/internal/game/status"
)

func TestSet_AddRemove(t *testing.T) {
	s := status.NewSet()
	s.Add(status.Poison)
	s.Add(status.Poison)
	assert.True(t, s.Has(status.Poison))
	assert.Equal(t, 1, s.Len())

	assert.True(t, s.Remove(status.Poison))
	assert.False(t, s.Remove(status.Poison))
	assert.False(t, s.Has(status.Poison))
}

func TestSet_HasAny(t *testing.T) {
	s := status.NewSet()
	s.Add(status.Darkness)
	assert.True(t, s.HasAny(status.Poison, status.Darkness))
	assert.False(t, s.HasAny(status.Poison, status.Venom))
	assert.False(t, s.HasAny())
}

func TestSet_All_Sorted(t *testing.T) {
	s := status.NewSet()
	s.Add(status.Trouble)
	s.Add(status.Poison)
	s.Add(status.Mini)
	assert.Equal(t, []status.Status{status.Poison, status.Mini, status.Trouble}, s.All())
}

func TestParse(t *testing.T) {
	got, err := status.Parse("Gradual_Petrify")
	require.NoError(t, err)
	assert.Equal(t, status.GradualPetrify, got)

	_, err = status.Parse("sleep")
	assert.Error(t, err)
}

func TestParse_RoundTripsString(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := status.Status(rapid.IntRange(int(status.Poison), int(status.Trouble)).Draw(rt, "status"))
		got, err := status.Parse(s.String())
		require.NoError(rt, err)
		assert.Equal(rt, s, got)
	})
}

func TestSet_Property_RemoveClears(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := status.NewSet()
		added := rapid.SliceOf(rapid.IntRange(0, 8)).Draw(rt, "added")
		for _, a := range added {
			s.Add(status.Status(a))
		}
		target := status.Status(rapid.IntRange(0, 8).Draw(rt, "target"))
		s.Remove(target)
		assert.False(rt, s.Has(target))
	})
}
