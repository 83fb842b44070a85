package anim

import "time"

// DefaultFrameDuration applies when neither a clip nor its animation
// specifies a duration.
const DefaultFrameDuration = 100 * time.Millisecond

// Duration specifies the timing of a clip or animation, either as a fixed
// time per frame or as a fixed time per repetition.
type Duration struct {
	perRepetition bool
	d             time.Duration
}

// PerFrame gives every frame the same duration d.
func PerFrame(d time.Duration) Duration {
	return Duration{d: d}
}

// PerRepetition makes one full repetition last total, dividing it across the
// frames of the repetition.
func PerRepetition(total time.Duration) Duration {
	return Duration{perRepetition: true, d: total}
}

// Resolve expands the duration into one entry per frame.
//
// PerFrame replicates its value frameCount times. PerRepetition divides the
// total evenly; the integer remainder of the division is spread one unit at a
// time over the leading frames so the resolved durations always sum to the
// total exactly, with no drift over repeated passes. A frameCount of zero
// resolves to nil.
func (u Duration) Resolve(frameCount int) []time.Duration {
	if frameCount <= 0 {
		return nil
	}
	out := make([]time.Duration, frameCount)
	if !u.perRepetition {
		for i := range out {
			out[i] = u.d
		}
		return out
	}
	q := u.d / time.Duration(frameCount)
	r := int(u.d % time.Duration(frameCount))
	for i := range out {
		out[i] = q
		if i < r {
			out[i]++
		}
	}
	return out
}

func (u Duration) String() string {
	if u.perRepetition {
		return "per-repetition " + u.d.String()
	}
	return "per-frame " + u.d.String()
}
