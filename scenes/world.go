package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/stride/assets"
	cfg "github.com/automoto/stride/config"
	"github.com/automoto/stride/config/layers"
	"github.com/automoto/stride/systems"
	"github.com/automoto/stride/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldOptions are the host collaborators the world scene runs with.
type WorldOptions struct {
	Sheet   *assets.Spritesheet
	Clock   systems.Clock
	Watcher *cfg.Watcher // nil disables hot reload
}

// WorldScene is the ground plane with the controllable player on it.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	opts         WorldOptions
	once         sync.Once
}

func NewWorldScene(sc SceneChanger, opts WorldOptions) *WorldScene {
	if opts.Clock == nil {
		opts.Clock = systems.NewClock(ebiten.TPS())
	}
	return &WorldScene{sceneChanger: sc, opts: opts}
}

func (ws *WorldScene) Update() error {
	ws.once.Do(ws.configure)
	ws.ecs.Update()
	return nil
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.NewClockSystem(ws.opts.Clock))
	ecs.AddSystem(systems.UpdateSettings)
	if ws.opts.Watcher != nil {
		ecs.AddSystem(systems.NewConfigReloadSystem(ws.opts.Watcher))
	}

	// Gameplay systems stop while paused
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))

	ecs.AddRenderer(layers.Default, systems.DrawGround)
	ecs.AddRenderer(layers.Default, systems.DrawPlayer)
	ecs.AddRenderer(layers.Overlay, systems.DrawDebug)
	ecs.AddRenderer(layers.Overlay, systems.DrawPause)

	ws.ecs = ecs

	factory.CreateCamera(ws.ecs)
	factory.CreatePlayer(ws.ecs, 0, ws.opts.Sheet)
}
