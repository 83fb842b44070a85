package anim

import (
	"github.com/kamstrup/intmap"
)

// Library is a registry for clips, animations and markers. It owns the
// identity side of the engine: stable opaque IDs and optional unique names.
// The playback engine itself never needs a Library; hosts that build
// animations inline can ignore it entirely.
//
// A Library is not safe for concurrent mutation. Registered definitions are
// read-only and may be shared by any number of players.
type Library struct {
	clips      *intmap.Map[ClipID, Clip]
	animations *intmap.Map[AnimationID, Animation]

	animationIDs []AnimationID // registration order, for enumeration

	clipNames      map[string]ClipID
	animationNames map[string]AnimationID
	markerNames    map[string]MarkerID

	nextMarker MarkerID
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{
		clips:          intmap.New[ClipID, Clip](64),
		animations:     intmap.New[AnimationID, Animation](64),
		clipNames:      make(map[string]ClipID),
		animationNames: make(map[string]AnimationID),
		markerNames:    make(map[string]MarkerID),
	}
}

// RegisterClip stores a clip under its ID.
func (l *Library) RegisterClip(c Clip) ClipID {
	l.clips.Put(c.id, c)
	return c.id
}

// RegisterClipWithName stores a clip under a unique name.
func (l *Library) RegisterClipWithName(c Clip, name string) (ClipID, error) {
	if _, taken := l.clipNames[name]; taken {
		return 0, ErrNameTaken
	}
	l.clipNames[name] = c.id
	return l.RegisterClip(c), nil
}

// Clip looks up a registered clip.
func (l *Library) Clip(id ClipID) (Clip, bool) {
	return l.clips.Get(id)
}

// ClipByName looks up a clip registered with RegisterClipWithName.
func (l *Library) ClipByName(name string) (Clip, bool) {
	id, ok := l.clipNames[name]
	if !ok {
		return Clip{}, false
	}
	return l.clips.Get(id)
}

// RegisterAnimation stores an animation under its ID.
func (l *Library) RegisterAnimation(a Animation) AnimationID {
	if _, exists := l.animations.Get(a.id); !exists {
		l.animationIDs = append(l.animationIDs, a.id)
	}
	l.animations.Put(a.id, a)
	return a.id
}

// RegisterAnimationWithName stores an animation under a unique name.
func (l *Library) RegisterAnimationWithName(a Animation, name string) (AnimationID, error) {
	if _, taken := l.animationNames[name]; taken {
		return 0, ErrNameTaken
	}
	l.animationNames[name] = a.id
	return l.RegisterAnimation(a), nil
}

// Animation looks up a registered animation.
func (l *Library) Animation(id AnimationID) (Animation, bool) {
	return l.animations.Get(id)
}

// AnimationByName looks up an animation registered with
// RegisterAnimationWithName.
func (l *Library) AnimationByName(name string) (Animation, bool) {
	id, ok := l.animationNames[name]
	if !ok {
		return Animation{}, false
	}
	return l.animations.Get(id)
}

// AnimationIDs returns the IDs of all registered animations in registration
// order.
func (l *Library) AnimationIDs() []AnimationID {
	return l.animationIDs
}

// NewMarker allocates a fresh marker ID.
func (l *Library) NewMarker() MarkerID {
	l.nextMarker++
	return l.nextMarker
}

// NewMarkerWithName allocates a marker under a unique name.
func (l *Library) NewMarkerWithName(name string) (MarkerID, error) {
	if _, taken := l.markerNames[name]; taken {
		return 0, ErrNameTaken
	}
	id := l.NewMarker()
	l.markerNames[name] = id
	return id, nil
}

// MarkerByName looks up a named marker.
func (l *Library) MarkerByName(name string) (MarkerID, bool) {
	id, ok := l.markerNames[name]
	return id, ok
}

// IsMarkerName reports whether the marker was registered under the name.
// Convenient when fanning out MarkerHit milestones.
func (l *Library) IsMarkerName(id MarkerID, name string) bool {
	got, ok := l.markerNames[name]
	return ok && got == id
}

// MarkerName returns the name a marker was registered under, if any.
func (l *Library) MarkerName(id MarkerID) (string, bool) {
	for name, got := range l.markerNames {
		if got == id {
			return name, true
		}
	}
	return "", false
}
