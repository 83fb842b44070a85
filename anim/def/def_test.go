package def_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/anim/anim"
	"github.com/plus3/anim/anim/def"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const walkDoc = `
markers: [footstep]
clips:
  step:
    frames: [0, 1, 2, 3]
    duration: 80ms
    markers:
      footstep: [1, 3]
animations:
  walk:
    clips: [step]
    repeat: loop
  jump:
    frames: [8, 9, 10]
    total_duration: 450ms
    easing: out-quad
    repeat: "1"
`

func TestRegisterDocument(t *testing.T) {
	doc, err := def.Parse([]byte(walkDoc))
	require.NoError(t, err)

	lib := anim.NewLibrary()
	require.NoError(t, doc.Register(lib))

	step, ok := lib.ClipByName("step")
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2, 3}, step.Frames())

	footstep, ok := lib.MarkerByName("footstep")
	require.True(t, ok)
	assert.Equal(t, []anim.MarkerID{footstep}, step.Markers()[1])
	assert.Equal(t, []anim.MarkerID{footstep}, step.Markers()[3])

	_, ok = lib.AnimationByName("walk")
	assert.True(t, ok)
	_, ok = lib.AnimationByName("jump")
	assert.True(t, ok)
}

func TestRegisteredAnimationPlays(t *testing.T) {
	doc, err := def.Parse([]byte(walkDoc))
	require.NoError(t, err)
	lib := anim.NewLibrary()
	require.NoError(t, doc.Register(lib))

	walk, ok := lib.AnimationByName("walk")
	require.True(t, ok)
	p, err := anim.NewPlayer(walk)
	require.NoError(t, err)

	// 80ms per frame from the clip definition.
	ms, err := p.Advance(100 * time.Millisecond)
	require.NoError(t, err)
	f, visible := p.Frame()
	assert.True(t, visible)
	assert.Equal(t, 1, f)

	var hits int
	for _, m := range ms {
		if m.Kind == anim.MarkerHit {
			hits++
		}
	}
	assert.Equal(t, 1, hits)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anims.yaml")
	require.NoError(t, os.WriteFile(path, []byte(walkDoc), 0o644))

	doc, err := def.Load(path)
	require.NoError(t, err)
	assert.Len(t, doc.Animations, 2)

	_, err = def.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseRejectsBadYAML(t *testing.T) {
	_, err := def.Parse([]byte("animations: ["))
	assert.Error(t, err)
}

func TestRegisterRejectsBadDocuments(t *testing.T) {
	cases := map[string]string{
		"unknown clip reference": `
animations:
  walk:
    clips: [missing]
`,
		"undeclared marker": `
clips:
  step:
    frames: [0]
    markers:
      footstep: [0]
animations:
  walk:
    clips: [step]
`,
		"marker out of range": `
markers: [footstep]
clips:
  step:
    frames: [0, 1]
    markers:
      footstep: [5]
animations:
  walk:
    clips: [step]
`,
		"both duration forms": `
animations:
  walk:
    frames: [0, 1]
    duration: 80ms
    total_duration: 1s
`,
		"clips and frames": `
clips:
  step:
    frames: [0]
animations:
  walk:
    clips: [step]
    frames: [0, 1]
`,
		"empty animation": `
animations:
  walk: {}
`,
		"bad repeat": `
animations:
  walk:
    frames: [0]
    repeat: sometimes
`,
		"bad direction": `
animations:
  walk:
    frames: [0]
    direction: sideways
`,
		"bad easing": `
animations:
  walk:
    frames: [0]
    easing: bouncy
`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			d, err := def.Parse([]byte(doc))
			require.NoError(t, err)
			assert.ErrorIs(t, d.Register(anim.NewLibrary()), def.ErrInvalidDocument)
		})
	}
}

func TestRegisterReusesExistingMarkers(t *testing.T) {
	lib := anim.NewLibrary()
	existing, err := lib.NewMarkerWithName("footstep")
	require.NoError(t, err)

	doc, err := def.Parse([]byte(walkDoc))
	require.NoError(t, err)
	require.NoError(t, doc.Register(lib))

	step, ok := lib.ClipByName("step")
	require.True(t, ok)
	assert.Equal(t, []anim.MarkerID{existing}, step.Markers()[1])
}
