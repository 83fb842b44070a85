package anim_test

import (
	"testing"
	"time"

	"github.com/plus3/anim/anim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyClipAlone(t *testing.T) {
	// A clip with no frames cannot play; the animation completes on the
	// first advance without consuming time or showing a frame.
	p, err := anim.NewPlayer(anim.FromClips(anim.NewClip()))
	require.NoError(t, err)

	_, visible := p.Frame()
	assert.False(t, visible)

	ms := mustAdvance(t, p, time.Hour)
	assert.Equal(t, []anim.MilestoneKind{anim.ClipEnd, anim.AnimationEnd}, kinds(ms))
	assert.True(t, p.Done())

	ms = mustAdvance(t, p, time.Hour)
	assert.Empty(t, ms)
}

func TestAllClipsEmpty(t *testing.T) {
	p, err := anim.NewPlayer(anim.FromClips(
		anim.NewClip(),
		anim.NewClip(1, 2).WithRepeat(anim.Times(0)),
		anim.NewClip(),
	))
	require.NoError(t, err)

	ms := mustAdvance(t, p, time.Millisecond)
	assert.Equal(t, []anim.MilestoneKind{
		anim.ClipEnd, anim.ClipEnd, anim.ClipEnd, anim.AnimationEnd,
	}, kinds(ms))
	assert.Equal(t, []int{0, 1, 2}, []int{ms[0].ClipIndex, ms[1].ClipIndex, ms[2].ClipIndex})
	assert.True(t, p.Done())
}

func TestEmptyClipBeforePlayable(t *testing.T) {
	empty := anim.NewClip()
	playable := anim.NewClip(5, 6)
	p, err := anim.NewPlayer(anim.FromClips(empty, playable).WithRepeat(anim.Times(1)))
	require.NoError(t, err)

	// The leading empty clip ends immediately; the delta goes entirely to
	// the first playable frame.
	ms := mustAdvance(t, p, 50*time.Millisecond)
	assert.Equal(t, []anim.MilestoneKind{anim.ClipEnd}, kinds(ms))
	assert.Equal(t, 0, ms[0].ClipIndex)
	assert.Equal(t, 5, curFrame(t, p))
	assert.Equal(t, 50*time.Millisecond, p.Position().Elapsed)
}

func TestEmptyClipBetweenPlayable(t *testing.T) {
	a := anim.NewClip(0, 1)
	gap := anim.NewClip().WithRepeat(anim.Times(5))
	b := anim.NewClip(2, 3)
	p, err := anim.NewPlayer(anim.FromClips(a, gap, b).WithRepeat(anim.Times(1)))
	require.NoError(t, err)

	// Crossing from a to b steps over the gap, which ends exactly once no
	// matter its repeat count.
	ms := mustAdvance(t, p, 250*time.Millisecond)
	assert.Equal(t, []anim.MilestoneKind{
		anim.ClipRepetitionEnd,
		anim.ClipEnd,
		anim.ClipEnd,
	}, kinds(ms))
	assert.Equal(t, 0, ms[1].ClipIndex)
	assert.Equal(t, 1, ms[2].ClipIndex)
	assert.Equal(t, 2, curFrame(t, p))
}

func TestZeroTimesClipIsSkipped(t *testing.T) {
	p, err := anim.NewPlayer(anim.FromClips(
		anim.NewClip(0, 1).WithRepeat(anim.Times(0)),
		anim.NewClip(9),
	).WithRepeat(anim.Times(1)))
	require.NoError(t, err)

	ms := mustAdvance(t, p, 10*time.Millisecond)
	assert.Equal(t, []anim.MilestoneKind{anim.ClipEnd}, kinds(ms))
	assert.Equal(t, 9, curFrame(t, p))
}
