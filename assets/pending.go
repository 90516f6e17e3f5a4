package assets

import (
	"image"
	"io/fs"
)

// Pending is a spritesheet being decoded in the background. Decoding happens
// off the game goroutine. The GPU image is created by Sheet, which must be
// called from the game loop.
type Pending struct {
	layout SheetLayout
	done   chan struct{}
	img    image.Image
	err    error
	sheet  *Spritesheet
}

// LoadAsync starts decoding path from fsys and returns immediately.
func LoadAsync(fsys fs.FS, path string, layout SheetLayout) *Pending {
	p := &Pending{
		layout: layout,
		done:   make(chan struct{}),
	}
	go func() {
		defer close(p.done)
		p.img, p.err = readSheet(fsys, path, layout)
	}()
	return p
}

// Ready reports whether decoding has finished, successfully or not.
func (p *Pending) Ready() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// Wait blocks until decoding has finished and returns its error.
func (p *Pending) Wait() error {
	<-p.done
	return p.err
}

// Err returns the decode error once Ready reports true.
func (p *Pending) Err() error {
	if !p.Ready() {
		return nil
	}
	return p.err
}

// Sheet returns the loaded sheet, or nil while loading or after a failure.
func (p *Pending) Sheet() *Spritesheet {
	if !p.Ready() || p.err != nil {
		return nil
	}
	if p.sheet == nil {
		p.sheet = NewSpritesheet(p.img, p.layout)
		p.img = nil
	}
	return p.sheet
}
