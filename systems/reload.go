package systems

import (
	"log"

	cfg "github.com/automoto/stride/config"
	"github.com/yohamta/donburi/ecs"
)

// tuningWatcher is the part of *config.Watcher polled by the reload system.
type tuningWatcher interface {
	Poll() (string, bool)
}

// NewReloadSystem applies tuning file changes reported by w on the game
// goroutine. An invalid file is logged and the previous tuning kept.
func NewReloadSystem(w tuningWatcher, reload func(path string) error) ecs.System {
	return func(e *ecs.ECS) {
		path, ok := w.Poll()
		if !ok {
			return
		}
		if err := reload(path); err != nil {
			log.Printf("Warning: tuning not reloaded: %v", err)
			return
		}
		log.Printf("tuning reloaded from %s", path)
	}
}

// NewConfigReloadSystem watches a tuning file with config.ReloadTuning.
func NewConfigReloadSystem(w *cfg.Watcher) ecs.System {
	apply := NewReloadSystem(w, cfg.ReloadTuning)
	return func(e *ecs.ECS) {
		select {
		case err := <-w.Errors:
			log.Printf("Warning: watching tuning file: %v", err)
		default:
		}
		apply(e)
	}
}
