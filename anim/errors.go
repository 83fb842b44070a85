package anim

import "errors"

// Invalid input always yields a typed error, never a panic or a silent clamp.
var (
	// ErrInvalidComposition reports an animation with no clips where at
	// least one is structurally required.
	ErrInvalidComposition = errors.New("anim: animation has no clips")

	// ErrNegativeDuration reports a negative clip or animation duration.
	ErrNegativeDuration = errors.New("anim: negative duration")

	// ErrNegativeRepeat reports a negative repetition count.
	ErrNegativeRepeat = errors.New("anim: negative repeat count")

	// ErrNegativeDelta reports a negative time delta passed to Advance.
	ErrNegativeDelta = errors.New("anim: negative time delta")

	// ErrInvalidProgress reports a seek value outside [0, 1] or NaN.
	ErrInvalidProgress = errors.New("anim: progress outside [0, 1]")

	// ErrInvalidPosition reports a position that does not address any frame
	// of the bound animation.
	ErrInvalidPosition = errors.New("anim: position does not match the animation")

	// ErrNameTaken reports a clip, animation or marker name already in use
	// within a Library.
	ErrNameTaken = errors.New("anim: name already taken")
)
