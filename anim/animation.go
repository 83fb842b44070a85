package anim

import "sync/atomic"

// Direction is the order in which frames are played.
type Direction int

const (
	// Forward plays frames first to last (default).
	Forward Direction = iota
	// Backward plays frames last to first.
	Backward
	// PingPong alternates Forward and Backward at each repetition, starting
	// Forward. At the animation level it also reverses the order of clips on
	// the backward pass.
	PingPong
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case PingPong:
		return "ping-pong"
	}
	return "unknown"
}

// Repeat specifies how many times a clip or animation plays.
type Repeat struct {
	loop  bool
	times int
}

// Loop repeats forever, the default for animations.
var Loop = Repeat{loop: true}

// Times plays exactly n repetitions. Times(0) is a valid "never play"
// request.
func Times(n int) Repeat {
	return Repeat{times: n}
}

// IsLoop reports whether the repeat loops forever.
func (r Repeat) IsLoop() bool { return r.loop }

// Count returns the repetition count for finite repeats and is meaningless
// when IsLoop is true.
func (r Repeat) Count() int { return r.times }

// AnimationID is an opaque identifier for an animation.
type AnimationID uint64

var nextAnimationID atomic.Uint64

// Animation is one or more clips played as a single timeline.
//
// Animation-level duration, repeat, direction and easing, when set, override
// the behavior of the whole composed timeline: the concatenated clip sequence
// is treated as one unit subject to them, while per-clip settings keep
// governing the relative frame spacing inside each clip segment.
//
// Like Clip, Animation is a value type with copy-returning With* methods.
type Animation struct {
	id        AnimationID
	clips     []Clip
	duration  option[Duration]
	repeat    option[Repeat]
	direction option[Direction]
	easing    option[Easing]
}

// FromClips creates an animation playing the given clips in order.
func FromClips(clips ...Clip) Animation {
	return Animation{
		id:    AnimationID(nextAnimationID.Add(1)),
		clips: append([]Clip(nil), clips...),
	}
}

// FromFrames creates a single-clip animation, the common case.
func FromFrames(frames ...int) Animation {
	return FromClips(NewClip(frames...))
}

// ID returns the animation's unique identifier.
func (a Animation) ID() AnimationID { return a.id }

// Clips returns the animation's clips in playback order.
func (a Animation) Clips() []Clip { return a.clips }

// WithDuration overrides the timing of the whole animation. A PerRepetition
// duration is distributed across all clips of one pass proportionally to
// their own durations, so that the pass lasts exactly the requested total.
func (a Animation) WithDuration(d Duration) Animation {
	a.duration = some(d)
	return a
}

// WithRepeat sets how many times the whole animation plays.
func (a Animation) WithRepeat(r Repeat) Animation {
	a.repeat = some(r)
	return a
}

// WithDirection sets the playback direction of the whole animation.
func (a Animation) WithDirection(d Direction) Animation {
	a.direction = some(d)
	return a
}

// WithEasing applies easing across one whole pass of the animation,
// compounding with per-clip easings.
func (a Animation) WithEasing(e Easing) Animation {
	a.easing = some(e)
	return a
}
