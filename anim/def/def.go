// Package def loads clip and animation definitions from YAML documents and
// registers them into a library, so spritesheet timing can live next to the
// art instead of in code.
//
// A document looks like:
//
//	markers: [footstep]
//	clips:
//	  step:
//	    frames: [0, 1, 2, 3]
//	    duration: 80ms
//	    markers:
//	      footstep: [1, 3]
//	animations:
//	  walk:
//	    clips: [step]
//	    repeat: loop
//	  jump:
//	    frames: [8, 9, 10]
//	    total_duration: 450ms
//	    easing: out-quad
package def

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/plus3/anim/anim"
)

// ErrInvalidDocument reports a structurally invalid definition document.
var ErrInvalidDocument = errors.New("def: invalid document")

// Document is the top-level YAML structure.
type Document struct {
	// Markers declares marker names referenced by clips.
	Markers []string `yaml:"markers,omitempty"`

	// Clips are named, reusable clip definitions.
	Clips map[string]Clip `yaml:"clips,omitempty"`

	// Animations are the playable entries, keyed by name.
	Animations map[string]Animation `yaml:"animations"`
}

// Clip defines one clip.
type Clip struct {
	Frames []int `yaml:"frames"`

	// Duration is a per-frame duration ("80ms"); TotalDuration spreads a
	// total over the repetition instead. At most one may be set.
	Duration      string `yaml:"duration,omitempty"`
	TotalDuration string `yaml:"total_duration,omitempty"`

	// Repeat is "loop" or a repetition count.
	Repeat string `yaml:"repeat,omitempty"`

	// Direction is "forward", "backward" or "ping-pong".
	Direction string `yaml:"direction,omitempty"`

	// Easing is "linear" or variant-curve, e.g. "in-quad", "in-out-sine".
	Easing string `yaml:"easing,omitempty"`

	// Markers maps a declared marker name to the frame offsets it fires on.
	Markers map[string][]int `yaml:"markers,omitempty"`
}

// Animation defines one animation, either by referencing named clips or with
// an inline frame sequence.
type Animation struct {
	Clips  []string `yaml:"clips,omitempty"`
	Frames []int    `yaml:"frames,omitempty"`

	Duration      string `yaml:"duration,omitempty"`
	TotalDuration string `yaml:"total_duration,omitempty"`
	Repeat        string `yaml:"repeat,omitempty"`
	Direction     string `yaml:"direction,omitempty"`
	Easing        string `yaml:"easing,omitempty"`
}

// Parse decodes a YAML document.
func Parse(data []byte) (*Document, error) {
	var d Document
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("def: parse: %w", err)
	}
	return &d, nil
}

// Load reads and decodes a YAML document from a file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("def: read %s: %w", path, err)
	}
	return Parse(data)
}

// Register resolves the document and registers its markers, clips and
// animations into the library under their names. Marker names already present
// in the library are reused rather than redeclared.
func (d *Document) Register(lib *anim.Library) error {
	markers := make(map[string]anim.MarkerID, len(d.Markers))
	for _, name := range d.Markers {
		if id, ok := lib.MarkerByName(name); ok {
			markers[name] = id
			continue
		}
		id, err := lib.NewMarkerWithName(name)
		if err != nil {
			return err
		}
		markers[name] = id
	}

	clips := make(map[string]anim.Clip, len(d.Clips))
	for _, name := range sortedKeys(d.Clips) {
		c, err := d.Clips[name].build(name, markers)
		if err != nil {
			return err
		}
		if _, err := lib.RegisterClipWithName(c, name); err != nil {
			return err
		}
		clips[name] = c
	}

	for _, name := range sortedKeys(d.Animations) {
		a, err := d.Animations[name].build(name, clips)
		if err != nil {
			return err
		}
		if _, err := lib.RegisterAnimationWithName(a, name); err != nil {
			return err
		}
	}
	return nil
}

func (c Clip) build(name string, markers map[string]anim.MarkerID) (anim.Clip, error) {
	clip := anim.NewClip(c.Frames...)

	d, ok, err := parseDuration(c.Duration, c.TotalDuration)
	if err != nil {
		return anim.Clip{}, fmt.Errorf("clip %q: %w", name, err)
	}
	if ok {
		clip = clip.WithDuration(d)
	}
	if c.Repeat != "" {
		r, err := parseRepeat(c.Repeat)
		if err != nil {
			return anim.Clip{}, fmt.Errorf("clip %q: %w", name, err)
		}
		clip = clip.WithRepeat(r)
	}
	if c.Direction != "" {
		dir, err := parseDirection(c.Direction)
		if err != nil {
			return anim.Clip{}, fmt.Errorf("clip %q: %w", name, err)
		}
		clip = clip.WithDirection(dir)
	}
	if c.Easing != "" {
		e, err := parseEasing(c.Easing)
		if err != nil {
			return anim.Clip{}, fmt.Errorf("clip %q: %w", name, err)
		}
		clip = clip.WithEasing(e)
	}
	for _, mname := range sortedKeys(c.Markers) {
		id, ok := markers[mname]
		if !ok {
			return anim.Clip{}, fmt.Errorf("clip %q: undeclared marker %q: %w", name, mname, ErrInvalidDocument)
		}
		for _, frame := range c.Markers[mname] {
			if frame < 0 || frame >= len(c.Frames) {
				return anim.Clip{}, fmt.Errorf("clip %q: marker %q on frame %d of %d: %w",
					name, mname, frame, len(c.Frames), ErrInvalidDocument)
			}
			clip = clip.WithMarker(id, frame)
		}
	}
	return clip, nil
}

func (a Animation) build(name string, clips map[string]anim.Clip) (anim.Animation, error) {
	if len(a.Clips) > 0 && len(a.Frames) > 0 {
		return anim.Animation{}, fmt.Errorf("animation %q: both clips and frames: %w", name, ErrInvalidDocument)
	}
	if len(a.Clips) == 0 && len(a.Frames) == 0 {
		return anim.Animation{}, fmt.Errorf("animation %q: no clips or frames: %w", name, ErrInvalidDocument)
	}

	var animation anim.Animation
	if len(a.Frames) > 0 {
		animation = anim.FromFrames(a.Frames...)
	} else {
		resolved := make([]anim.Clip, len(a.Clips))
		for i, ref := range a.Clips {
			c, ok := clips[ref]
			if !ok {
				return anim.Animation{}, fmt.Errorf("animation %q: unknown clip %q: %w", name, ref, ErrInvalidDocument)
			}
			resolved[i] = c
		}
		animation = anim.FromClips(resolved...)
	}

	d, ok, err := parseDuration(a.Duration, a.TotalDuration)
	if err != nil {
		return anim.Animation{}, fmt.Errorf("animation %q: %w", name, err)
	}
	if ok {
		animation = animation.WithDuration(d)
	}
	if a.Repeat != "" {
		r, err := parseRepeat(a.Repeat)
		if err != nil {
			return anim.Animation{}, fmt.Errorf("animation %q: %w", name, err)
		}
		animation = animation.WithRepeat(r)
	}
	if a.Direction != "" {
		dir, err := parseDirection(a.Direction)
		if err != nil {
			return anim.Animation{}, fmt.Errorf("animation %q: %w", name, err)
		}
		animation = animation.WithDirection(dir)
	}
	if a.Easing != "" {
		e, err := parseEasing(a.Easing)
		if err != nil {
			return anim.Animation{}, fmt.Errorf("animation %q: %w", name, err)
		}
		animation = animation.WithEasing(e)
	}
	return animation, nil
}

func parseDuration(perFrame, total string) (anim.Duration, bool, error) {
	switch {
	case perFrame != "" && total != "":
		return anim.Duration{}, false, fmt.Errorf("both duration and total_duration: %w", ErrInvalidDocument)
	case perFrame != "":
		d, err := time.ParseDuration(perFrame)
		if err != nil {
			return anim.Duration{}, false, fmt.Errorf("duration %q: %w", perFrame, ErrInvalidDocument)
		}
		return anim.PerFrame(d), true, nil
	case total != "":
		d, err := time.ParseDuration(total)
		if err != nil {
			return anim.Duration{}, false, fmt.Errorf("total_duration %q: %w", total, ErrInvalidDocument)
		}
		return anim.PerRepetition(d), true, nil
	}
	return anim.Duration{}, false, nil
}

func parseRepeat(s string) (anim.Repeat, error) {
	if s == "loop" {
		return anim.Loop, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return anim.Repeat{}, fmt.Errorf("repeat %q: %w", s, ErrInvalidDocument)
	}
	return anim.Times(n), nil
}

func parseDirection(s string) (anim.Direction, error) {
	for _, d := range []anim.Direction{anim.Forward, anim.Backward, anim.PingPong} {
		if s == d.String() {
			return d, nil
		}
	}
	return 0, fmt.Errorf("direction %q: %w", s, ErrInvalidDocument)
}

var easings = func() map[string]anim.Easing {
	m := map[string]anim.Easing{}
	for _, c := range []anim.EasingCurve{
		anim.Quadratic, anim.Cubic, anim.Quartic, anim.Quintic,
		anim.Exponential, anim.Circular, anim.Sine,
	} {
		for _, e := range []anim.Easing{anim.EaseIn(c), anim.EaseOut(c), anim.EaseInOut(c)} {
			m[e.String()] = e
		}
	}
	m[anim.Linear.String()] = anim.Linear
	return m
}()

func parseEasing(s string) (anim.Easing, error) {
	e, ok := easings[s]
	if !ok {
		return anim.Easing{}, fmt.Errorf("easing %q: %w", s, ErrInvalidDocument)
	}
	return e, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
