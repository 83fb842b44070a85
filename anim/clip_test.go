package anim_test

import (
	"testing"
	"time"

	"github.com/plus3/anim/anim"
	"github.com/stretchr/testify/assert"
)

func TestClipIDsAreUnique(t *testing.T) {
	a := anim.NewClip(0)
	b := anim.NewClip(0)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestClipWithMethodsReturnCopies(t *testing.T) {
	base := anim.NewClip(0, 1, 2)
	marked := base.WithMarker(anim.MarkerID(1), 0)
	timed := marked.WithDuration(anim.PerFrame(time.Second))

	// The base is untouched and derived clips share its identity.
	assert.Empty(t, base.Markers())
	assert.Equal(t, []anim.MarkerID{1}, marked.Markers()[0])
	assert.Equal(t, base.ID(), timed.ID())
}

func TestClipMarkerMapIsNotShared(t *testing.T) {
	base := anim.NewClip(0, 1)
	first := base.WithMarker(anim.MarkerID(1), 0)
	second := first.WithMarker(anim.MarkerID(2), 1)

	assert.Equal(t, []anim.MarkerID{1}, first.Markers()[0])
	assert.Empty(t, first.Markers()[1])
	assert.Equal(t, []anim.MarkerID{2}, second.Markers()[1])
}

func TestAnimationIDsAreUnique(t *testing.T) {
	assert.NotEqual(t, anim.FromFrames(0).ID(), anim.FromFrames(0).ID())
}
