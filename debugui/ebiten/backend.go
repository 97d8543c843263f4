// Package ebiten wraps cimgui-go's ebiten backend so the render layer
// can drive Dear ImGui frames without importing cimgui directly.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
)

// Backend is the Dear ImGui ebiten backend. It satisfies the render
// package's Overlay interface through the embedded implementation's
// BeginFrame, EndFrame, Draw and Layout methods.
type Backend struct {
	*ebitenbackend.EbitenBackend
}

// NewBackend creates the backend. Call before the first frame.
func NewBackend() *Backend {
	return &Backend{EbitenBackend: ebitenbackend.NewEbitenBackend()}
}

// Layout adapts the embedded backend's two-return Layout to the
// Overlay interface.
func (b *Backend) Layout(outsideWidth, outsideHeight int) {
	b.EbitenBackend.Layout(outsideWidth, outsideHeight)
}
