package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"io/fs"

	"github.com/automoto/stride/config"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	//go:embed all:images
	imageFS embed.FS
)

// DefaultSheetPath is the embedded player spritesheet.
const DefaultSheetPath = "images/player/spritesheet.png"

// ErrSheetTooSmall is returned when an image cannot hold the whole frame grid.
var ErrSheetTooSmall = errors.New("assets: spritesheet smaller than its frame grid")

// SheetLayout is the frame grid of a spritesheet. Frames are numbered row by
// row starting at the top-left cell.
type SheetLayout struct {
	Columns    int
	Rows       int
	CellWidth  int
	CellHeight int
	PaddingY   int
}

// LayoutFrom converts the sheet configuration to a layout.
func LayoutFrom(c config.SheetConfig) SheetLayout {
	return SheetLayout{
		Columns:    c.Columns,
		Rows:       c.Rows,
		CellWidth:  c.CellWidth,
		CellHeight: c.CellHeight,
		PaddingY:   c.PaddingY,
	}
}

func (l SheetLayout) Frames() int {
	return l.Columns * l.Rows
}

// FrameRect returns the source rectangle of frame index in sheet pixels.
func (l SheetLayout) FrameRect(index int) image.Rectangle {
	col := index % l.Columns
	row := index / l.Columns
	x := col * l.CellWidth
	y := row * (l.CellHeight + l.PaddingY)
	return image.Rect(x, y, x+l.CellWidth, y+l.CellHeight)
}

// MinSize is the smallest image that contains every frame. There is no
// padding after the last row.
func (l SheetLayout) MinSize() (int, int) {
	if l.Rows <= 0 {
		return l.Columns * l.CellWidth, 0
	}
	return l.Columns * l.CellWidth, l.Rows*l.CellHeight + (l.Rows-1)*l.PaddingY
}

// Check verifies that an image with bounds b holds the grid.
func (l SheetLayout) Check(b image.Rectangle) error {
	if l.Columns <= 0 || l.Rows <= 0 || l.CellWidth <= 0 || l.CellHeight <= 0 || l.PaddingY < 0 {
		return fmt.Errorf("assets: invalid sheet layout %+v", l)
	}
	w, h := l.MinSize()
	if b.Dx() < w || b.Dy() < h {
		return fmt.Errorf("%w: got %dx%d, need at least %dx%d", ErrSheetTooSmall, b.Dx(), b.Dy(), w, h)
	}
	return nil
}

// DecodeSheet decodes an image and checks it against layout.
func DecodeSheet(r io.Reader, layout SheetLayout) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("assets: decode spritesheet: %w", err)
	}
	if err := layout.Check(img.Bounds()); err != nil {
		return nil, err
	}
	return img, nil
}

// Spritesheet is a loaded sheet with lazily cut frames.
type Spritesheet struct {
	layout     SheetLayout
	image      *ebiten.Image
	frameCache map[int]*ebiten.Image
}

// NewSpritesheet wraps a decoded image. It must be called on the game goroutine.
func NewSpritesheet(img image.Image, layout SheetLayout) *Spritesheet {
	return &Spritesheet{
		layout:     layout,
		image:      ebiten.NewImageFromImage(img),
		frameCache: make(map[int]*ebiten.Image),
	}
}

// Frame returns a cached sub-image for frame index, or nil when index is
// outside the grid.
func (s *Spritesheet) Frame(index int) *ebiten.Image {
	if index < 0 || index >= s.layout.Frames() {
		return nil
	}
	if img, ok := s.frameCache[index]; ok {
		return img
	}

	frame := s.image.SubImage(s.layout.FrameRect(index)).(*ebiten.Image)
	s.frameCache[index] = frame
	return frame
}

// Preload cuts every frame so the first draw of a clip does not allocate.
func (s *Spritesheet) Preload() {
	for i := 0; i < s.layout.Frames(); i++ {
		_ = s.Frame(i)
	}
}

// LoadSpritesheet reads path from fsys and returns the sheet.
func LoadSpritesheet(fsys fs.FS, path string, layout SheetLayout) (*Spritesheet, error) {
	img, err := readSheet(fsys, path, layout)
	if err != nil {
		return nil, err
	}
	return NewSpritesheet(img, layout), nil
}

// FS returns the embedded asset filesystem.
func FS() fs.FS {
	return imageFS
}

func readSheet(fsys fs.FS, path string, layout SheetLayout) (image.Image, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}
	img, err := DecodeSheet(bytes.NewReader(data), layout)
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w", path, err)
	}
	return img, nil
}
