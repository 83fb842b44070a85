package ebiten_test

import (
	"time"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/anim/anim"
	"github.com/plus3/anim/anim/debugui"
	debugui_ebiten "github.com/plus3/anim/anim/debugui/ebiten"
)

// Game implements ebiten.Game and runs the playback inspector over a player.
type Game struct {
	inspector *debugui.Inspector
	backend   debugui_ebiten.ImguiBackend
	last      time.Time
}

func (g *Game) Update() error {
	now := time.Now()
	delta := now.Sub(g.last)
	g.last = now

	if err := g.inspector.Advance(delta); err != nil {
		return err
	}

	g.backend.BeginFrame()
	g.inspector.Render()
	g.backend.EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw the sprite for g.inspector.Player().Frame() here.

	// ImGui overlay on top.
	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow("Playback Inspector", 1280, 720)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

	lib := anim.NewLibrary()
	footstep, _ := lib.NewMarkerWithName("footstep")

	sheet := anim.NewSpritesheet(8, 4)
	walk := anim.FromClips(
		anim.NewClip(sheet.Row(1)...).WithMarker(footstep, 2),
	).WithDuration(anim.PerFrame(80 * time.Millisecond))
	lib.RegisterAnimationWithName(walk, "walk")

	player, err := anim.NewPlayer(walk)
	if err != nil {
		panic(err)
	}

	game := &Game{
		inspector: debugui.NewInspector(player, lib),
		backend:   debugui_ebiten.ImguiBackend{EbitenBackend: backend},
		last:      time.Now(),
	}

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
