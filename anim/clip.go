package anim

import "sync/atomic"

// ClipID is an opaque identifier for a clip. IDs are unique within a process.
type ClipID uint64

// MarkerID is an opaque identifier for an animation marker. Markers are
// allocated by a Library (or any other registry the host uses); the engine
// only knows them as frame offsets within a clip.
type MarkerID uint64

var nextClipID atomic.Uint64

// Clip is an ordered sequence of spritesheet cell indices, the basic building
// block of animations. Simple animations contain a single clip while more
// sophisticated ones sequence several.
//
// Duration, repeat, direction and easing are all optional and independently
// overridable; unset parameters fall back to the defaults (PerFrame(100ms),
// Times(1), Forward, Linear) unless the parent animation overrides them.
//
// Clips are values: the With* methods return modified copies and never mutate
// the receiver, so a clip can be shared and tweaked freely.
type Clip struct {
	id        ClipID
	frames    []int
	duration  option[Duration]
	repeat    option[Repeat]
	direction option[Direction]
	easing    option[Easing]
	markers   map[int][]MarkerID
}

// NewClip creates a clip from spritesheet cell indices.
//
// An empty clip is valid but degenerate: it produces no visible frame and
// completes immediately during playback.
func NewClip(frames ...int) Clip {
	return Clip{
		id:     ClipID(nextClipID.Add(1)),
		frames: append([]int(nil), frames...),
	}
}

// ID returns the clip's unique identifier.
func (c Clip) ID() ClipID { return c.id }

// Frames returns the clip's cell indices.
func (c Clip) Frames() []int { return c.frames }

// WithDuration sets the clip's duration.
func (c Clip) WithDuration(d Duration) Clip {
	c.duration = some(d)
	return c
}

// WithRepeat sets how many times the clip plays within one animation pass.
func (c Clip) WithRepeat(r Repeat) Clip {
	c.repeat = some(r)
	return c
}

// WithDirection sets the order in which the clip's frames play.
func (c Clip) WithDirection(d Direction) Clip {
	c.direction = some(d)
	return c
}

// WithEasing sets the clip's easing, distorting frame dwell times within each
// repetition.
func (c Clip) WithEasing(e Easing) Clip {
	c.easing = some(e)
	return c
}

// WithMarker attaches a marker to the frame at the given offset within the
// clip. A MarkerHit milestone fires whenever that frame becomes current.
// Several markers can share a frame.
func (c Clip) WithMarker(id MarkerID, frame int) Clip {
	markers := make(map[int][]MarkerID, len(c.markers)+1)
	for k, v := range c.markers {
		markers[k] = append([]MarkerID(nil), v...)
	}
	markers[frame] = append(markers[frame], id)
	c.markers = markers
	return c
}

// Markers returns the clip's markers keyed by frame offset.
func (c Clip) Markers() map[int][]MarkerID { return c.markers }
