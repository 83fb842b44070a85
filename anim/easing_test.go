package anim_test

import (
	"fmt"
	"testing"

	"github.com/plus3/anim/anim"
	"github.com/stretchr/testify/assert"
)

var allCurves = []anim.EasingCurve{
	anim.Quadratic, anim.Cubic, anim.Quartic, anim.Quintic,
	anim.Exponential, anim.Circular, anim.Sine,
}

func allEasings() []anim.Easing {
	easings := []anim.Easing{anim.Linear}
	for _, c := range allCurves {
		easings = append(easings, anim.EaseIn(c), anim.EaseOut(c), anim.EaseInOut(c))
	}
	return easings
}

func TestEasingEndpoints(t *testing.T) {
	for _, e := range allEasings() {
		t.Run(e.String(), func(t *testing.T) {
			assert.InDelta(t, 0, e.Apply(0), 1e-9)
			assert.InDelta(t, 1, e.Apply(1), 1e-9)
		})
	}
}

func TestEasingClampsInput(t *testing.T) {
	for _, e := range allEasings() {
		assert.Equal(t, 0.0, e.Apply(-0.5), e.String())
		assert.Equal(t, 1.0, e.Apply(1.5), e.String())
	}
}

func TestEasingMonotone(t *testing.T) {
	const steps = 1000
	for _, e := range allEasings() {
		t.Run(e.String(), func(t *testing.T) {
			prev := e.Apply(0)
			for i := 1; i <= steps; i++ {
				cur := e.Apply(float64(i) / steps)
				if cur < prev-1e-12 {
					t.Fatalf("not monotone at t=%v: %v < %v", float64(i)/steps, cur, prev)
				}
				prev = cur
			}
		})
	}
}

func TestEaseInOutSymmetry(t *testing.T) {
	// In-out variants are point symmetric around (0.5, 0.5).
	for _, c := range allCurves {
		e := anim.EaseInOut(c)
		for i := 0; i <= 10; i++ {
			p := float64(i) / 10
			assert.InDelta(t, 1, e.Apply(p)+e.Apply(1-p), 1e-9,
				fmt.Sprintf("%s at t=%v", e, p))
		}
	}
}

func TestLinearIsIdentity(t *testing.T) {
	assert.True(t, anim.Linear.IsLinear())
	assert.False(t, anim.EaseIn(anim.Quadratic).IsLinear())
	for i := 0; i <= 10; i++ {
		p := float64(i) / 10
		assert.Equal(t, p, anim.Linear.Apply(p))
	}
}
