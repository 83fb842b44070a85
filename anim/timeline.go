package anim

import (
	"fmt"
	"math"
	"time"
)

// tframe is one pre-computed playback frame.
type tframe struct {
	cell        int // spritesheet cell index
	duration    time.Duration
	frameInClip int // offset of the frame within its clip's sequence
	markers     []MarkerID
}

// block is one repetition of a clip within a pass. A sentinel block stands in
// for a clip that cannot play (no frames, Times(0) or zero duration); it
// consumes no time and only contributes a ClipEnd milestone when crossed.
type block struct {
	clipIndex int // position of the clip within the animation
	clipID    ClipID
	clipRep   int // repetition number in playback order
	frames    []tframe
	sentinel  bool
}

// timeline is the compiled form of an animation: a flat pass of blocks (plus
// an alternate reversed pass for PingPong animations) that the player walks.
// Compiling once up front keeps Advance a plain subtraction loop with no
// per-call parameter evaluation.
type timeline struct {
	ping      []block
	pong      []block // alternate pass, non-nil only for PingPong animations
	repeats   int     // number of passes to play, -1 when looping forever
	direction Direction
	pingTotal time.Duration
	pongTotal time.Duration

	// loopAt marks an infinitely repeating clip: instead of completing the
	// pass, playback wraps back to block loopAt, consuming loopReps clip
	// repetitions per wrap. -1 when no clip loops.
	loopAt   int
	loopReps int
}

func (tl *timeline) pass(rep int) []block {
	if tl.pong != nil && rep%2 == 1 {
		return tl.pong
	}
	return tl.ping
}

func (tl *timeline) passTotal(rep int) time.Duration {
	if tl.pong != nil && rep%2 == 1 {
		return tl.pongTotal
	}
	return tl.pingTotal
}

// empty reports whether the timeline has nothing to play.
func (tl *timeline) empty() bool {
	return tl.pingTotal == 0
}

// clipPlan is a clip with its effective playback parameters resolved against
// the animation-level overrides.
type clipPlan struct {
	index     int
	id        ClipID
	frames    []int
	markers   map[int][]MarkerID
	duration  Duration
	reps      int // -1 when the clip loops forever
	direction Direction
	easing    Easing
	sentinel  bool
}

func planClips(a *Animation) ([]clipPlan, error) {
	if len(a.clips) == 0 {
		return nil, ErrInvalidComposition
	}
	if a.duration.ok && a.duration.value.d < 0 {
		return nil, fmt.Errorf("anim: animation duration: %w", ErrNegativeDuration)
	}
	if a.repeat.ok && !a.repeat.value.IsLoop() && a.repeat.value.Count() < 0 {
		return nil, fmt.Errorf("anim: animation repeat: %w", ErrNegativeRepeat)
	}

	plans := make([]clipPlan, len(a.clips))
	for i, c := range a.clips {
		if c.duration.ok && c.duration.value.d < 0 {
			return nil, fmt.Errorf("anim: clip %d duration: %w", i, ErrNegativeDuration)
		}
		if c.repeat.ok && !c.repeat.value.IsLoop() && c.repeat.value.Count() < 0 {
			return nil, fmt.Errorf("anim: clip %d repeat: %w", i, ErrNegativeRepeat)
		}

		duration := c.duration.or(PerFrame(DefaultFrameDuration))
		if a.duration.ok && !a.duration.value.perRepetition {
			// A per-frame animation duration overrides every clip's timing.
			// A per-repetition one is distributed later, preserving each
			// clip's own relative spacing.
			duration = a.duration.value
		}

		repeat := c.repeat.or(Times(1))
		reps := repeat.Count()
		if repeat.IsLoop() {
			reps = -1
		}

		plans[i] = clipPlan{
			index:     i,
			id:        c.id,
			frames:    c.frames,
			markers:   c.markers,
			duration:  duration,
			reps:      reps,
			direction: c.direction.or(Forward),
			easing:    c.easing.or(Linear),
			sentinel:  len(c.frames) == 0 || reps == 0,
		}
	}
	return plans, nil
}

// buildRep lays out one repetition of a clip in playback order. Frames that
// resolve to a zero duration are dropped.
func buildRep(cp *clipPlan, rep int) []tframe {
	n := len(cp.frames)
	order := make([]int, 0, n)
	switch cp.direction {
	case Forward:
		for i := 0; i < n; i++ {
			order = append(order, i)
		}
	case Backward:
		for i := n - 1; i >= 0; i-- {
			order = append(order, i)
		}
	case PingPong:
		switch {
		case rep == 0:
			// The first repetition plays every frame; later ones skip the
			// boundary frame shared with the previous repetition.
			for i := 0; i < n; i++ {
				order = append(order, i)
			}
		case rep%2 == 1:
			for i := n - 2; i >= 0; i-- {
				order = append(order, i)
			}
		default:
			for i := 1; i < n; i++ {
				order = append(order, i)
			}
		}
	}

	durs := cp.duration.Resolve(len(order))
	frames := make([]tframe, 0, len(order))
	for i, off := range order {
		if durs[i] == 0 {
			continue
		}
		frames = append(frames, tframe{
			cell:        cp.frames[off],
			duration:    durs[i],
			frameInClip: off,
			markers:     cp.markers[off],
		})
	}
	return frames
}

// cycleLen is how many repetition blocks an infinitely looping clip cycles
// through: PingPong alternates two, everything else replays one.
func cycleLen(cp *clipPlan) int {
	if cp.direction == PingPong {
		return 2
	}
	return 1
}

// assemble lays out one pass of the animation. For a reversed pass the clip
// order, the repetition order and the frames within each repetition are all
// reversed; clip repetition numbers always count in playback order.
func assemble(plans []clipPlan, reversed bool) []block {
	var blocks []block
	for pi := range plans {
		cp := &plans[pi]
		if reversed {
			cp = &plans[len(plans)-1-pi]
		}
		if cp.sentinel {
			blocks = append(blocks, block{clipIndex: cp.index, clipID: cp.id, sentinel: true})
			continue
		}

		reps := cp.reps
		if reps < 0 {
			// One steady cycle of an infinitely looping clip. PingPong needs
			// the full first repetition plus one pong/ping pair to cycle.
			reps = cycleLen(cp)
			if cp.direction == PingPong {
				reps = 3
			}
		}

		clipBlocks := make([]block, 0, reps)
		for r := 0; r < reps; r++ {
			frames := buildRep(cp, r)
			if len(frames) == 0 {
				continue
			}
			clipBlocks = append(clipBlocks, block{clipIndex: cp.index, clipID: cp.id, frames: frames})
		}
		if len(clipBlocks) == 0 {
			blocks = append(blocks, block{clipIndex: cp.index, clipID: cp.id, sentinel: true})
			continue
		}

		if reversed {
			for i, j := 0, len(clipBlocks)-1; i < j; i, j = i+1, j-1 {
				clipBlocks[i], clipBlocks[j] = clipBlocks[j], clipBlocks[i]
			}
			for bi := range clipBlocks {
				fr := clipBlocks[bi].frames
				for i, j := 0, len(fr)-1; i < j; i, j = i+1, j-1 {
					fr[i], fr[j] = fr[j], fr[i]
				}
			}
		}
		for bi := range clipBlocks {
			clipBlocks[bi].clipRep = bi
		}
		blocks = append(blocks, clipBlocks...)
	}
	return blocks
}

// reshape rewrites frame durations so they sum exactly to target, preserving
// relative spacing, optionally remapped through an easing curve. Cumulative
// times are computed through the curve and differenced, with the final value
// pinned to the target so the sum never drifts.
func reshape(frames []*tframe, target time.Duration, curve func(float64) float64) {
	var total time.Duration
	for _, f := range frames {
		total += f.duration
	}
	if total == 0 || len(frames) == 0 {
		return
	}
	if curve == nil && total == target {
		return
	}

	var acc, prevOut time.Duration
	for i, f := range frames {
		acc += f.duration
		t := float64(acc) / float64(total)
		if curve != nil {
			t = curve(t)
		}
		out := time.Duration(math.Round(t * float64(target)))
		if i == len(frames)-1 {
			out = target
		}
		if out < prevOut {
			out = prevOut
		}
		f.duration = out - prevOut
		prevOut = out
	}
}

func collectFrames(blocks []block) []*tframe {
	var out []*tframe
	for bi := range blocks {
		for fi := range blocks[bi].frames {
			out = append(out, &blocks[bi].frames[fi])
		}
	}
	return out
}

// distribute applies an animation-level per-repetition total: the duration is
// resolved over the full concatenated frame count of the pass, overriding
// every clip's own timing for that pass.
func distribute(blocks []block, target time.Duration) {
	frames := collectFrames(blocks)
	durs := PerRepetition(target).Resolve(len(frames))
	for i, f := range frames {
		f.duration = durs[i]
	}
}

// compile turns an animation into its playback timeline. All structural
// validation happens here so that Advance never has to fail on composition
// problems.
func compile(a *Animation) (*timeline, error) {
	plans, err := planClips(a)
	if err != nil {
		return nil, err
	}

	tl := &timeline{loopAt: -1, direction: a.direction.or(Forward)}
	repeat := a.repeat.or(Loop)
	if repeat.IsLoop() {
		tl.repeats = -1
	} else {
		tl.repeats = repeat.Count()
	}
	if tl.repeats == 0 {
		// A "never play" request compiles to an empty timeline.
		return tl, nil
	}

	animEasing := a.easing.or(Linear)

	build := func(reversed bool) ([]block, time.Duration, int, int) {
		blocks := assemble(plans, reversed)

		// Truncate after the first infinitely looping clip: everything past
		// it is unreachable.
		loopAt, loopReps := -1, 0
		scan := 0
		for scan < len(blocks) {
			b := &blocks[scan]
			if !b.sentinel && plans[b.clipIndex].reps < 0 {
				cycle := cycleLen(&plans[b.clipIndex])
				end := scan
				for end+1 < len(blocks) && blocks[end+1].clipIndex == b.clipIndex {
					end++
				}
				if cycle > end-scan+1 {
					cycle = end - scan + 1
				}
				blocks = blocks[:end+1]
				loopAt = end - cycle + 1
				loopReps = cycle
				break
			}
			scan++
		}

		if a.duration.ok && a.duration.value.perRepetition {
			distribute(blocks, a.duration.value.d)
		}
		for bi := range blocks {
			b := &blocks[bi]
			if b.sentinel {
				continue
			}
			frames := make([]*tframe, len(b.frames))
			for fi := range b.frames {
				frames[fi] = &b.frames[fi]
			}
			e := plans[b.clipIndex].easing
			if !e.IsLinear() {
				var total time.Duration
				for _, f := range frames {
					total += f.duration
				}
				reshape(frames, total, e.Apply)
			}
		}
		if !animEasing.IsLinear() {
			all := collectFrames(blocks)
			var total time.Duration
			for _, f := range all {
				total += f.duration
			}
			reshape(all, total, animEasing.Apply)
		}

		var total time.Duration
		for _, f := range collectFrames(blocks) {
			total += f.duration
		}
		return blocks, total, loopAt, loopReps
	}

	switch tl.direction {
	case Forward:
		tl.ping, tl.pingTotal, tl.loopAt, tl.loopReps = build(false)
	case Backward:
		tl.ping, tl.pingTotal, tl.loopAt, tl.loopReps = build(true)
	case PingPong:
		tl.ping, tl.pingTotal, tl.loopAt, tl.loopReps = build(false)
		if tl.loopAt < 0 {
			// The pong pass is unreachable when a clip loops forever.
			tl.pong, tl.pongTotal, _, _ = build(true)
		}
	}
	return tl, nil
}
