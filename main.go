package main

import (
	"errors"
	"flag"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/stride/assets"
	"github.com/automoto/stride/config"
	"github.com/automoto/stride/fonts"
	"github.com/automoto/stride/scenes"
	"github.com/automoto/stride/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(pending *assets.Pending, world scenes.WorldOptions) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewLoadingScene(g, pending, world)
	return g
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// applyConfig applies saved settings and then the tuning file, so keys set in
// the file win over saved values. Flags are applied after this.
func applyConfig(path string, saved *systems.SavedSettings) error {
	systems.ApplySavedSettingsGlobal(saved)
	if path == "" {
		return nil
	}
	return config.Load(path)
}

func main() {
	configPath := flag.String("config", "", "Tuning file (YAML)")
	watch := flag.Bool("watch", false, "Reload the tuning file when it changes")
	debug := flag.Bool("debug", false, "Show the debug overlay and log state transitions")
	clock := flag.String("clock", "", "Delta time source: wall or fixed")
	sheet := flag.String("sheet", "", "Player spritesheet PNG on disk (default: embedded)")
	flag.Parse()

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, _ := systems.LoadSettings() // failures are logged and fall back to defaults
	if err := applyConfig(*configPath, saved); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *debug {
		config.Debug.Overlay = true
		config.Debug.LogTransitions = true
	}
	if *clock != "" {
		if *clock != "wall" && *clock != "fixed" {
			log.Fatalf("Unknown clock %q: want wall or fixed", *clock)
		}
		config.Clock.Mode = *clock
	}
	if *sheet != "" {
		config.Sheet.Path = *sheet
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	layout := assets.LayoutFrom(config.Sheet)
	if err := config.Locomotion.Clips.Fits(layout.Frames()); err != nil {
		log.Fatalf("Animation clips do not fit the spritesheet: %v", err)
	}
	var pending *assets.Pending
	if config.Sheet.Path == "" {
		pending = assets.LoadAsync(assets.FS(), assets.DefaultSheetPath, layout)
	} else {
		dir, file := filepath.Split(config.Sheet.Path)
		if dir == "" {
			dir = "."
		}
		pending = assets.LoadAsync(os.DirFS(dir), file, layout)
	}

	world := scenes.WorldOptions{
		Clock: systems.NewClock(ebiten.TPS()),
	}
	if *watch {
		if *configPath == "" {
			log.Fatal("-watch needs -config")
		}
		w, err := config.Watch(*configPath)
		if err != nil {
			log.Fatalf("Failed to watch %s: %v", *configPath, err)
		}
		defer w.Close()
		world.Watcher = w
	}

	scale := systems.WindowScale(config.Settings.DefaultScaleIndex)
	ebiten.SetWindowSize(config.C.Width*scale, config.C.Height*scale)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(pending, world)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
