package terminal

import (
	"github.com/lixenwraith/vi-snake/core"
)

// TerminalService owns the screen lifecycle under the service hub
// The Host loop itself runs on the main goroutine, outside the hub
type TerminalService struct {
	screen *Screen
	host   *Host
}

// NewService wraps screen and its host
func NewService(screen *Screen, host *Host) *TerminalService {
	return &TerminalService{screen: screen, host: host}
}

// Name implements service.Service
func (s *TerminalService) Name() string { return "terminal" }

// Dependencies implements service.Service
func (s *TerminalService) Dependencies() []string { return []string{"status"} }

// Init implements service.Service
// Enters the alternate screen and registers the crash finalizer
func (s *TerminalService) Init() error {
	if err := s.screen.Init(); err != nil {
		return err
	}
	core.RegisterCrashTerminal(s.screen)
	return nil
}

// Start implements service.Service
func (s *TerminalService) Start() error { return nil }

// Stop implements service.Service
// Ends the host loop and restores the terminal
func (s *TerminalService) Stop() error {
	s.host.Quit(nil)
	s.screen.Fini()
	return nil
}
