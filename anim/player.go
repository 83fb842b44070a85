package anim

import (
	"math"
	"time"
)

// Position is the externally observable playback cursor. The host can query
// it, reset it or force-set it between Advance calls.
type Position struct {
	// AnimationRepetition counts completed passes of the whole animation.
	AnimationRepetition int

	// ClipIndex is the position of the current clip within the animation.
	ClipIndex int

	// ClipRepetition counts the current clip's repetitions in playback
	// order.
	ClipRepetition int

	// Frame is the offset of the current frame within the clip's sequence
	// (not the spritesheet cell index).
	Frame int

	// Elapsed is the time spent inside the current frame.
	Elapsed time.Duration
}

// Player advances one animation instance through time.
//
// A player is a pure state machine: Advance never blocks and its cost is
// bounded by the number of frame boundaries crossed, so arbitrarily large
// deltas (frame drops) are handled in a single call. A player must be owned
// by one goroutine at a time; independent players may be advanced in
// parallel and may share the same Animation value, which is never mutated.
type Player struct {
	animation Animation
	tl        *timeline

	blockIdx  int
	frameIdx  int
	inFrame   time.Duration
	rep       int
	extraReps int // clip repetitions accumulated by an infinitely looping clip
	started   bool
	done      bool
}

// NewPlayer compiles the animation and returns a player positioned at the
// start. Structural problems (no clips, negative durations or repeat counts)
// are reported here so playback itself never fails on composition issues.
func NewPlayer(a Animation) (*Player, error) {
	tl, err := compile(&a)
	if err != nil {
		return nil, err
	}
	p := &Player{animation: a, tl: tl}
	p.Reset()
	return p, nil
}

// Animation returns the animation the player is bound to.
func (p *Player) Animation() Animation { return p.animation }

// Done reports whether a finite animation has completed its final
// repetition. Further Advance calls are no-ops once this is true.
func (p *Player) Done() bool { return p.done }

// Reset returns the player to the initial position for the configured
// direction: the first frame for Forward and PingPong, the last frame for
// Backward (its pass is compiled in reverse).
func (p *Player) Reset() {
	p.blockIdx = 0
	p.frameIdx = 0
	p.inFrame = 0
	p.rep = 0
	p.extraReps = 0
	p.started = false
	p.done = false
	for p.blockIdx < len(p.tl.ping) && p.tl.ping[p.blockIdx].sentinel {
		p.blockIdx++
	}
	if p.blockIdx >= len(p.tl.ping) {
		p.blockIdx = 0
	}
}

// Switch replaces the bound animation and performs an implicit reset.
func (p *Player) Switch(a Animation) error {
	tl, err := compile(&a)
	if err != nil {
		return err
	}
	p.animation = a
	p.tl = tl
	p.Reset()
	return nil
}

// Frame returns the current spritesheet cell index. The second return is
// false when the animation has no visible frame (all clips empty).
func (p *Player) Frame() (int, bool) {
	if p.tl.empty() {
		return 0, false
	}
	blk := &p.tl.pass(p.rep)[p.blockIdx]
	return blk.frames[p.frameIdx].cell, true
}

// Position returns the current playback cursor.
func (p *Player) Position() Position {
	if p.tl.empty() {
		return Position{}
	}
	blk := &p.tl.pass(p.rep)[p.blockIdx]
	return Position{
		AnimationRepetition: p.rep,
		ClipIndex:           blk.clipIndex,
		ClipRepetition:      p.curClipRep(),
		Frame:               blk.frames[p.frameIdx].frameInClip,
		Elapsed:             p.inFrame,
	}
}

func (p *Player) curClipRep() int {
	blk := &p.tl.pass(p.rep)[p.blockIdx]
	if p.tl.loopAt >= 0 && p.blockIdx >= p.tl.loopAt {
		return blk.clipRep + p.extraReps
	}
	return blk.clipRep
}

// Advance moves playback forward by delta and returns the milestones crossed,
// in order. A delta of zero is always a milestone-free no-op, as is any call
// after a finite animation completed.
func (p *Player) Advance(delta time.Duration) ([]Milestone, error) {
	if delta < 0 {
		return nil, ErrNegativeDelta
	}
	if delta == 0 || p.done {
		return nil, nil
	}

	var ms []Milestone

	if p.tl.empty() {
		// Nothing can play: report each skipped clip's end and complete,
		// consuming none of the delta.
		for bi := range p.tl.ping {
			b := &p.tl.ping[bi]
			ms = append(ms, Milestone{Kind: ClipEnd, ClipIndex: b.clipIndex, ClipID: b.clipID})
		}
		ms = append(ms, Milestone{Kind: AnimationEnd})
		p.done = true
		return ms, nil
	}

	if !p.started {
		p.started = true
		// Clips skipped before the first playable frame end immediately.
		for bi := 0; bi < p.blockIdx; bi++ {
			b := &p.tl.ping[bi]
			if b.sentinel {
				ms = append(ms, Milestone{Kind: ClipEnd, ClipIndex: b.clipIndex, ClipID: b.clipID})
			}
		}
		p.emitFrame(&ms, nil)
	}

	remaining := delta
	for remaining > 0 && !p.done {
		blk := &p.tl.pass(p.rep)[p.blockIdx]
		need := blk.frames[p.frameIdx].duration - p.inFrame
		if remaining < need {
			p.inFrame += remaining
			break
		}
		remaining -= need
		p.step(&ms)
	}
	return ms, nil
}

// emitFrame reports the current frame's markers followed by the boundary
// milestones collected while reaching it.
func (p *Player) emitFrame(ms *[]Milestone, bounds []Milestone) {
	blk := &p.tl.pass(p.rep)[p.blockIdx]
	for _, marker := range blk.frames[p.frameIdx].markers {
		*ms = append(*ms, Milestone{
			Kind:                MarkerHit,
			Marker:              marker,
			ClipIndex:           blk.clipIndex,
			ClipID:              blk.clipID,
			ClipRepetition:      p.curClipRep(),
			AnimationRepetition: p.rep,
		})
	}
	*ms = append(*ms, bounds...)
}

// step crosses exactly one frame boundary, resolving any repetition, clip or
// pass boundaries that coincide with it.
func (p *Player) step(ms *[]Milestone) {
	pass := p.tl.pass(p.rep)
	blk := &pass[p.blockIdx]
	p.inFrame = 0

	if p.frameIdx+1 < len(blk.frames) {
		p.frameIdx++
		p.emitFrame(ms, nil)
		return
	}

	bounds := []Milestone{{
		Kind:                ClipRepetitionEnd,
		ClipIndex:           blk.clipIndex,
		ClipID:              blk.clipID,
		ClipRepetition:      p.curClipRep(),
		AnimationRepetition: p.rep,
	}}
	clipEnded := false
	endClip := func() {
		if !clipEnded {
			bounds = append(bounds, Milestone{
				Kind:                ClipEnd,
				ClipIndex:           blk.clipIndex,
				ClipID:              blk.clipID,
				ClipRepetition:      p.curClipRep(),
				AnimationRepetition: p.rep,
			})
			clipEnded = true
		}
	}

	next := p.blockIdx + 1
	skipFirst := false
	for {
		if next >= len(pass) {
			if p.tl.loopAt >= 0 {
				// The looping clip wraps within the pass; it never ends and
				// neither does the pass.
				p.extraReps += p.tl.loopReps
				p.blockIdx = p.tl.loopAt
				p.frameIdx = 0
				p.emitFrame(ms, bounds)
				return
			}
			endClip()
			endRep := p.curClipRep()
			bounds = append(bounds, Milestone{
				Kind:                AnimationRepetitionEnd,
				ClipIndex:           blk.clipIndex,
				ClipID:              blk.clipID,
				ClipRepetition:      endRep,
				AnimationRepetition: p.rep,
			})
			if p.tl.repeats >= 0 && p.rep+1 >= p.tl.repeats {
				bounds = append(bounds, Milestone{
					Kind:                AnimationEnd,
					ClipIndex:           blk.clipIndex,
					ClipID:              blk.clipID,
					ClipRepetition:      endRep,
					AnimationRepetition: p.rep,
				})
				*ms = append(*ms, bounds...)
				p.done = true
				// Pin the cursor at the terminal frame.
				p.inFrame = blk.frames[len(blk.frames)-1].duration
				return
			}
			p.rep++
			pass = p.tl.pass(p.rep)
			next = 0
			// A PingPong pass shares its boundary frame with the previous
			// pass, so the new pass starts one frame in.
			skipFirst = p.tl.direction == PingPong
			continue
		}

		nb := &pass[next]
		if nb.sentinel {
			endClip()
			bounds = append(bounds, Milestone{
				Kind:                ClipEnd,
				ClipIndex:           nb.clipIndex,
				ClipID:              nb.clipID,
				AnimationRepetition: p.rep,
			})
			next++
			continue
		}
		if nb.clipIndex != blk.clipIndex {
			endClip()
		}
		p.blockIdx = next
		p.frameIdx = 0
		if skipFirst && len(nb.frames) > 1 {
			p.frameIdx = 1
		}
		p.emitFrame(ms, bounds)
		return
	}
}

// Seek jumps to a normalized whole-animation progress without replaying
// intermediate milestones: a seek is a discontinuous jump, not elapsed
// playback. Progress spans all repetitions of a finite animation and a
// single pass of a looping one.
func (p *Player) Seek(progress float64) error {
	if math.IsNaN(progress) || progress < 0 || progress > 1 {
		return ErrInvalidProgress
	}
	p.Reset()
	p.started = true
	if p.tl.empty() {
		return nil
	}

	passes := 1
	if p.tl.repeats > 0 && p.tl.loopAt < 0 {
		passes = p.tl.repeats
	}
	var grand time.Duration
	for k := 0; k < passes; k++ {
		grand += p.effPassTotal(k)
	}

	target := time.Duration(math.Round(progress * float64(grand)))
	for k := 0; k < passes; k++ {
		eff := p.effPassTotal(k)
		if target < eff || k == passes-1 {
			p.rep = k
			p.place(target)
			return nil
		}
		target -= eff
	}
	return nil
}

// effPassTotal is the time one pass actually consumes: PingPong passes after
// the first skip their shared boundary frame.
func (p *Player) effPassTotal(rep int) time.Duration {
	total := p.tl.passTotal(rep)
	if rep > 0 && p.tl.direction == PingPong {
		pass := p.tl.pass(rep)
		for bi := range pass {
			if !pass[bi].sentinel {
				if len(pass[bi].frames) > 1 {
					total -= pass[bi].frames[0].duration
				}
				break
			}
		}
	}
	return total
}

// place positions the cursor at offset t into the current pass.
func (p *Player) place(t time.Duration) {
	pass := p.tl.pass(p.rep)
	skip := p.rep > 0 && p.tl.direction == PingPong
	for bi := range pass {
		blk := &pass[bi]
		if blk.sentinel {
			continue
		}
		start := 0
		if skip && len(blk.frames) > 1 {
			start = 1
		}
		skip = false
		for fi := start; fi < len(blk.frames); fi++ {
			d := blk.frames[fi].duration
			if t < d {
				p.blockIdx = bi
				p.frameIdx = fi
				p.inFrame = t
				return
			}
			t -= d
		}
	}
	// Ran past the end: pin at the terminal frame.
	for bi := len(pass) - 1; bi >= 0; bi-- {
		if !pass[bi].sentinel {
			p.blockIdx = bi
			p.frameIdx = len(pass[bi].frames) - 1
			p.inFrame = pass[bi].frames[p.frameIdx].duration
			break
		}
	}
	if p.tl.repeats >= 0 && p.rep == p.tl.repeats-1 && p.tl.loopAt < 0 {
		p.done = true
	}
}

// SetPosition force-sets the playback cursor. The position must address an
// actual frame of the bound animation; anything else is rejected with
// ErrInvalidPosition rather than silently clamped.
func (p *Player) SetPosition(pos Position) error {
	if p.tl.empty() {
		return ErrInvalidPosition
	}
	if pos.AnimationRepetition < 0 {
		return ErrInvalidPosition
	}
	if p.tl.repeats >= 0 && pos.AnimationRepetition >= p.tl.repeats {
		return ErrInvalidPosition
	}
	pass := p.tl.pass(pos.AnimationRepetition)
	for bi := range pass {
		blk := &pass[bi]
		if blk.sentinel || blk.clipIndex != pos.ClipIndex {
			continue
		}
		rep := blk.clipRep
		extra := 0
		if p.tl.loopAt >= 0 && bi >= p.tl.loopAt {
			// Repetitions of an infinitely looping clip repeat the same
			// cycle of blocks with an ever-growing repetition count.
			diff := pos.ClipRepetition - blk.clipRep
			if diff > 0 && p.tl.loopReps > 0 && diff%p.tl.loopReps == 0 {
				extra = diff
			}
		}
		if rep+extra != pos.ClipRepetition {
			continue
		}
		for fi := range blk.frames {
			f := &blk.frames[fi]
			if f.frameInClip != pos.Frame {
				continue
			}
			if pos.Elapsed < 0 || pos.Elapsed > f.duration {
				return ErrInvalidPosition
			}
			p.rep = pos.AnimationRepetition
			p.blockIdx = bi
			p.frameIdx = fi
			p.inFrame = pos.Elapsed
			p.extraReps = extra
			p.started = true
			p.done = false
			return nil
		}
	}
	return ErrInvalidPosition
}
