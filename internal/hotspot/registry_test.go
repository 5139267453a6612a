package hotspot

import (
	"testing"

	"go-anatomy-viewer/internal/defs"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	r, err := NewRegistry(defs.DefaultHotspots)
	require.NoError(t, err)
	assert.Equal(t, len(defs.DefaultHotspots), r.Len())

	h, ok := r.Lookup("Mắt")
	require.True(t, ok)
	assert.Equal(t, Handle(1), h)

	got := r.Get(h)
	assert.Equal(t, "Mắt", got.Label)
	assert.Equal(t, mgl32.Vec3{0, 1.8, 0.165}, got.Position)
	assert.Equal(t, float32(1), got.BaseScale)
	assert.Equal(t, float32(1), got.CurrentScale)
	assert.Equal(t, Idle, got.State)

	_, ok = r.Lookup("missing")
	assert.False(t, ok)
}

func TestNewRegistryRejectsDuplicates(t *testing.T) {
	_, err := NewRegistry([]defs.HotspotDefinition{{Label: "A"}, {Label: "A"}})
	assert.ErrorIs(t, err, defs.ErrDuplicateLabel)

	_, err = NewRegistry(nil)
	assert.ErrorIs(t, err, defs.ErrNoHotspots)
}

func TestAllReturnsCopy(t *testing.T) {
	r, err := NewRegistry(defs.DefaultHotspots)
	require.NoError(t, err)

	all := r.All()
	all[0].CurrentScale = 99
	assert.Equal(t, float32(1), r.Get(0).CurrentScale)
}

func TestSetScaleAndState(t *testing.T) {
	r, err := NewRegistry(defs.DefaultHotspots[:2])
	require.NoError(t, err)

	r.SetScale(1, 1.15)
	r.SetState(1, Hovered)
	assert.Equal(t, float32(1.15), r.Get(1).CurrentScale)
	assert.Equal(t, Hovered, r.Get(1).State)
	assert.Equal(t, "Hovered", r.Get(1).State.String())

	// out of range handles are no-ops
	r.SetScale(7, 3)
	r.SetState(-1, Hovered)
	assert.False(t, r.Valid(7))
	assert.Equal(t, float32(1), r.Get(0).CurrentScale)
}
