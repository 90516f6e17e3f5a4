package scenes

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/stride/assets"
	cfg "github.com/automoto/stride/config"
	"github.com/automoto/stride/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
)

// LoadingScene waits for the spritesheet to decode, then hands over to the
// world. A failed load ends the game with the error.
type LoadingScene struct {
	sceneChanger SceneChanger
	pending      *assets.Pending
	world        WorldOptions
	ticks        int
}

func NewLoadingScene(sc SceneChanger, pending *assets.Pending, world WorldOptions) *LoadingScene {
	return &LoadingScene{sceneChanger: sc, pending: pending, world: world}
}

func (ls *LoadingScene) Update() error {
	ls.ticks++
	if !ls.pending.Ready() {
		return nil
	}
	if err := ls.pending.Err(); err != nil {
		return fmt.Errorf("loading player spritesheet: %w", err)
	}

	sheet := ls.pending.Sheet()
	sheet.Preload()
	ls.world.Sheet = sheet
	ls.sceneChanger.ChangeScene(NewWorldScene(ls.sceneChanger, ls.world))
	return nil
}

func (ls *LoadingScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	msg := "Loading" + strings.Repeat(".", (ls.ticks/20)%4)
	face := fonts.Regular.Get()
	text.Draw(screen, msg, face, 8, cfg.C.Height-8, cfg.White)
}
