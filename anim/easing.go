package anim

import "github.com/fogleman/ease"

// EasingCurve selects the shape of an easing curve.
type EasingCurve int

const (
	Quadratic EasingCurve = iota
	Cubic
	Quartic
	Quintic
	Exponential
	Circular
	Sine
)

type easingVariant uint8

const (
	variantLinear easingVariant = iota
	variantIn
	variantOut
	variantInOut
)

// Easing varies how long each frame of a repetition stays on screen: the
// curve is applied to the cumulative frame boundary times, so frames whose
// boundaries the curve pulls together play quickly and frames it spreads
// apart dwell longer. The zero value is linear (no distortion).
//
// Easings are monotonic: Apply(0) is 0, Apply(1) is 1 and the output never
// decreases as the input grows. Inputs outside [0, 1] are clamped.
type Easing struct {
	variant easingVariant
	curve   EasingCurve
}

// Linear is the identity easing, the default for clips and animations.
var Linear = Easing{}

// EaseIn rises slowly then accelerates. Reshaping a repetition with it
// shortens the early frames and stretches the late ones.
func EaseIn(curve EasingCurve) Easing { return Easing{variant: variantIn, curve: curve} }

// EaseOut rises quickly then decelerates, stretching the early frames and
// shortening the late ones.
func EaseOut(curve EasingCurve) Easing { return Easing{variant: variantOut, curve: curve} }

// EaseInOut combines EaseIn and EaseOut, point-symmetric around t = 0.5: the
// first and last frames play quickly while the middle dwells.
func EaseInOut(curve EasingCurve) Easing { return Easing{variant: variantInOut, curve: curve} }

// IsLinear reports whether the easing is the identity.
func (e Easing) IsLinear() bool { return e.variant == variantLinear }

var easeFuncs = [3][7]func(float64) float64{
	{ease.InQuad, ease.InCubic, ease.InQuart, ease.InQuint, ease.InExpo, ease.InCirc, ease.InSine},
	{ease.OutQuad, ease.OutCubic, ease.OutQuart, ease.OutQuint, ease.OutExpo, ease.OutCirc, ease.OutSine},
	{ease.InOutQuad, ease.InOutCubic, ease.InOutQuart, ease.InOutQuint, ease.InOutExpo, ease.InOutCirc, ease.InOutSine},
}

// Apply evaluates the easing at t.
func (e Easing) Apply(t float64) float64 {
	// Pinning the endpoints keeps the Apply(0)=0 / Apply(1)=1 contract
	// regardless of the underlying curve implementation.
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	if e.variant == variantLinear {
		return t
	}
	return easeFuncs[e.variant-1][e.curve](t)
}

func (e Easing) String() string {
	if e.variant == variantLinear {
		return "linear"
	}
	variants := [...]string{"in", "out", "in-out"}
	curves := [...]string{"quad", "cubic", "quart", "quint", "expo", "circ", "sine"}
	return variants[e.variant-1] + "-" + curves[e.curve]
}
