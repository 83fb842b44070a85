// Package ebiten provides Dear ImGui backend integration for running the
// playback inspector inside an Ebiten game loop.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
// Call BeginFrame before rendering inspector windows and EndFrame after.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}
