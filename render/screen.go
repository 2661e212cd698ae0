package render

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
)

// Screen renders the countdown centered in a tcell viewport.
type Screen struct {
	screen tcell.Screen
	style  tcell.Style
}

// NewScreen wraps an initialized tcell screen.
func NewScreen(screen tcell.Screen) *Screen {
	return &Screen{
		screen: screen,
		style:  tcell.StyleDefault,
	}
}

// Draw clears the viewport and paints the remaining seconds centered
// horizontally and vertically. The size is read every frame, so a
// resize needs no special handling here.
func (s *Screen) Draw(remaining int) error {
	width, height := s.screen.Size()
	if width <= 0 || height <= 0 {
		return fmt.Errorf("render: degenerate viewport %dx%d", width, height)
	}

	s.screen.Clear()

	text := strconv.Itoa(remaining)
	x := (width - len(text)) / 2
	if x < 0 {
		x = 0
	}
	y := height / 2

	for i, r := range text {
		s.screen.SetContent(x+i, y, r, nil, s.style)
	}

	s.screen.Show()
	return nil
}
