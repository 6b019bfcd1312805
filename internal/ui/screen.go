// Package ui provides terminal rendering and keyboard input using tcell.
package ui

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// eventBuffer is the capacity of the event channel.
const eventBuffer = 64

// Screen wraps tcell.Screen with a simplified interface.
type Screen struct {
	screen tcell.Screen

	startOnce sync.Once
	closeOnce sync.Once
	events    chan tcell.Event
	done      chan struct{}
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	return NewScreenFrom(s)
}

// NewScreenFrom initializes an existing tcell screen, such as a simulation screen.
func NewScreenFrom(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.HideCursor()
	s.Clear()
	return &Screen{
		screen: s,
		events: make(chan tcell.Event, eventBuffer),
		done:   make(chan struct{}),
	}, nil
}

// Close finalizes the screen and restores terminal state. It is safe to call more than once.
func (s *Screen) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.screen.Fini()
	})
}

// Events starts the event pump on first use and returns its channel.
// The channel is closed once the screen is closed.
func (s *Screen) Events() <-chan tcell.Event {
	s.startOnce.Do(func() {
		go s.pump()
	})
	return s.events
}

// pump forwards terminal events until the screen is finalized.
func (s *Screen) pump() {
	defer close(s.events)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// SetContent sets a single cell's content at the given position.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// Size returns the current terminal dimensions.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Sync forces a complete redraw of the screen.
func (s *Screen) Sync() {
	s.screen.Sync()
}
