package anim

// MilestoneKind discriminates the boundary crossings reported by Advance.
type MilestoneKind uint8

const (
	// MarkerHit fires when a frame carrying a marker becomes current,
	// including when the frame is revisited on a reversed pass.
	MarkerHit MilestoneKind = iota
	// ClipRepetitionEnd fires when one repetition of a clip completes.
	ClipRepetitionEnd
	// ClipEnd fires when the last repetition of a clip completes. A clip
	// with no playable frames emits it immediately, consuming no time.
	ClipEnd
	// AnimationRepetitionEnd fires when the last clip segment of a pass
	// completes.
	AnimationRepetitionEnd
	// AnimationEnd fires exactly once, when a finite animation completes its
	// final repetition.
	AnimationEnd
)

func (k MilestoneKind) String() string {
	switch k {
	case MarkerHit:
		return "marker-hit"
	case ClipRepetitionEnd:
		return "clip-repetition-end"
	case ClipEnd:
		return "clip-end"
	case AnimationRepetitionEnd:
		return "animation-repetition-end"
	case AnimationEnd:
		return "animation-end"
	}
	return "unknown"
}

// Milestone is a discrete notification that a repetition, clip or animation
// boundary (or a marker frame) was crossed during an Advance call.
//
// The engine only produces milestones; dispatching them is the host's job.
// Every milestone carries the composition context at the moment of crossing.
type Milestone struct {
	Kind MilestoneKind

	// Marker is set for MarkerHit milestones.
	Marker MarkerID

	// ClipIndex is the position of the clip within the animation.
	ClipIndex int
	ClipID    ClipID

	// ClipRepetition counts the clip's repetitions in playback order.
	ClipRepetition int

	// AnimationRepetition counts completed passes of the whole animation.
	AnimationRepetition int
}
