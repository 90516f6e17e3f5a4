package components

import (
	"github.com/automoto/stride/assets"
	"github.com/yohamta/donburi"
)

// SheetData points an entity at the spritesheet its cursor indexes into.
type SheetData struct {
	Sheet *assets.Spritesheet
}

var Sheet = donburi.NewComponentType[SheetData]()
