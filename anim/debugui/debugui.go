// Package debugui provides an immediate-mode Dear ImGui inspector for
// animation playback: live position, transport controls and a rolling
// milestone log.
package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/anim/anim"
)

// Inspector drives one player under UI control and renders its state.
//
// The host calls Advance once per tick with the raw frame delta and Render
// inside its ImGui frame. Pause and speed are applied by the inspector, so
// the host does not need its own transport logic.
type Inspector struct {
	player *anim.Player
	lib    *anim.Library // optional, resolves marker and animation names
	log    *MilestoneLog

	paused bool
	speed  float32
	clock  time.Duration

	history      []float32
	historyIndex int
}

// NewInspector creates an inspector for the player. lib may be nil; named
// markers then show as raw IDs.
func NewInspector(player *anim.Player, lib *anim.Library) *Inspector {
	return &Inspector{
		player:  player,
		lib:     lib,
		log:     NewMilestoneLog(256),
		speed:   1,
		history: make([]float32, 120),
	}
}

// Player returns the inspected player.
func (in *Inspector) Player() *anim.Player { return in.player }

// Log returns the rolling milestone log.
func (in *Inspector) Log() *MilestoneLog { return in.log }

// Advance applies the transport state to the raw delta, advances the player
// and records any crossed milestones.
func (in *Inspector) Advance(delta time.Duration) error {
	if in.paused || in.speed <= 0 {
		return nil
	}
	scaled := time.Duration(float64(delta) * float64(in.speed))
	ms, err := in.player.Advance(scaled)
	if err != nil {
		return err
	}
	in.clock += scaled
	in.log.Add(in.clock, ms...)

	if f, ok := in.player.Frame(); ok {
		in.history[in.historyIndex] = float32(f)
		in.historyIndex = (in.historyIndex + 1) % len(in.history)
	}
	return nil
}

// Render draws the inspector window.
func (in *Inspector) Render() {
	if !imgui.BeginV("Animation Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	pos := in.player.Position()
	frame, visible := in.player.Frame()
	if visible {
		imgui.Text(fmt.Sprintf("Cell: %d", frame))
	} else {
		imgui.Text("Cell: (none)")
	}
	imgui.Text(fmt.Sprintf("Clip %d  rep %d  frame %d  +%s",
		pos.ClipIndex, pos.ClipRepetition, pos.Frame, pos.Elapsed.Round(time.Millisecond)))
	imgui.Text(fmt.Sprintf("Animation rep %d  done: %v", pos.AnimationRepetition, in.player.Done()))

	imgui.Separator()

	label := "Pause"
	if in.paused {
		label = "Resume"
	}
	if imgui.Button(label) {
		in.paused = !in.paused
	}
	imgui.SameLine()
	if imgui.Button("Restart") {
		in.player.Reset()
		in.clock = 0
	}
	imgui.SameLine()
	if imgui.Button("Step 10ms") {
		ms, err := in.player.Advance(10 * time.Millisecond)
		if err == nil {
			in.clock += 10 * time.Millisecond
			in.log.Add(in.clock, ms...)
		}
	}

	imgui.SliderFloat("Speed", &in.speed, 0, 4)

	var progress float32
	if imgui.SliderFloat("Seek", &progress, 0, 1) {
		if err := in.player.Seek(float64(progress)); err == nil {
			in.log.Clear()
		}
	}

	imgui.Separator()
	imgui.Text("Frame history")
	imgui.PlotLinesFloatPtr("##framehistory", &in.history[0], int32(len(in.history)))

	if imgui.TreeNodeStr(fmt.Sprintf("Milestones (%d)###milestones", in.log.Total())) {
		for _, e := range in.log.Entries() {
			imgui.BulletText(fmt.Sprintf("%8s  %s", e.At.Round(time.Millisecond), in.describe(e.Milestone)))
		}
		imgui.TreePop()
	}

	imgui.End()
}

func (in *Inspector) describe(m anim.Milestone) string {
	switch m.Kind {
	case anim.MarkerHit:
		return fmt.Sprintf("marker %s (clip %d)", in.markerName(m.Marker), m.ClipIndex)
	case anim.ClipRepetitionEnd:
		return fmt.Sprintf("clip %d repetition %d end", m.ClipIndex, m.ClipRepetition)
	case anim.ClipEnd:
		return fmt.Sprintf("clip %d end", m.ClipIndex)
	case anim.AnimationRepetitionEnd:
		return fmt.Sprintf("animation repetition %d end", m.AnimationRepetition)
	case anim.AnimationEnd:
		return "animation end"
	}
	return m.Kind.String()
}

func (in *Inspector) markerName(id anim.MarkerID) string {
	if in.lib != nil {
		if name, ok := in.lib.MarkerName(id); ok {
			return name
		}
	}
	return fmt.Sprintf("#%d", id)
}
