package anim_test

import (
	"fmt"
	"time"

	"github.com/plus3/anim/anim"
)

func Example() {
	animation := anim.FromFrames(0, 1, 2).
		WithDuration(anim.PerFrame(100 * time.Millisecond)).
		WithRepeat(anim.Times(1))

	player, err := anim.NewPlayer(animation)
	if err != nil {
		panic(err)
	}

	for i := 0; i < 4; i++ {
		milestones, _ := player.Advance(100 * time.Millisecond)
		frame, _ := player.Frame()
		fmt.Println(frame, len(milestones), player.Done())
	}

	// Output:
	// 1 0 false
	// 2 0 false
	// 2 4 true
	// 2 0 true
}

func ExamplePlayer_Advance_markers() {
	lib := anim.NewLibrary()
	footstep, _ := lib.NewMarkerWithName("footstep")

	clip := anim.NewClip(4, 5, 6, 7).WithMarker(footstep, 2)
	player, err := anim.NewPlayer(anim.FromClips(clip))
	if err != nil {
		panic(err)
	}

	milestones, _ := player.Advance(250 * time.Millisecond)
	for _, m := range milestones {
		if m.Kind == anim.MarkerHit && lib.IsMarkerName(m.Marker, "footstep") {
			frame, _ := player.Frame()
			fmt.Println("footstep at cell", frame)
		}
	}

	// Output:
	// footstep at cell 6
}
