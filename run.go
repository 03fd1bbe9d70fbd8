package fling

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// Background fills the screen before each Draw. Zero leaves it clear.
	Background Color
	// Layout, when set, runs at the start of every frame so the host can
	// size and position nodes before flights resolve them.
	Layout func(nav *Navigator)
}

// game adapts a Navigator to ebiten.Game.
type game struct {
	nav *Navigator
	cfg RunConfig
}

func (g *game) Update() error {
	if g.cfg.Layout != nil {
		g.cfg.Layout(g.nav)
	}
	return g.nav.Update(1.0 / float64(ebiten.TPS()))
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.cfg.Background.A > 0 {
		screen.Fill(g.cfg.Background.toRGBA())
	}
	g.nav.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.cfg.Width, g.cfg.Height
	if w <= 0 || h <= 0 {
		w, h = outsideWidth, outsideHeight
	}
	if s := g.nav.root.Size(); s.X != float64(w) || s.Y != float64(h) {
		g.nav.SetSize(float64(w), float64(h))
	}
	return w, h
}

// Run opens a window and drives nav until the window closes or Update
// returns an error (a configuration error from flight matching, or one
// returned by a script).
func Run(nav *Navigator, cfg RunConfig) error {
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
		nav.SetSize(float64(cfg.Width), float64(cfg.Height))
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	defer nav.Dispose()
	return ebiten.RunGame(&game{nav: nav, cfg: cfg})
}
