package audio

import (
	"errors"
	"log"
	"sync/atomic"
)

// AudioService wraps SoundManager as a Service
// Handles graceful degradation when no audio device is available
type AudioService struct {
	manager  *SoundManager
	disabled atomic.Bool
}

// NewService creates an audio service for cfg
func NewService(cfg *AudioConfig) *AudioService {
	return &AudioService{manager: NewSoundManager(cfg)}
}

// Name implements service.Service
func (s *AudioService) Name() string { return "audio" }

// Dependencies implements service.Service
func (s *AudioService) Dependencies() []string { return []string{"status"} }

// Init implements service.Service
// A missing device disables audio instead of failing startup
func (s *AudioService) Init() error {
	if err := s.manager.Initialize(); err != nil {
		s.disabled.Store(true)
		if !errors.Is(err, ErrDisabled) {
			log.Printf("audio unavailable, continuing without sound: %v", err)
		}
	}
	return nil
}

// Start implements service.Service
func (s *AudioService) Start() error { return nil }

// Stop implements service.Service
func (s *AudioService) Stop() error {
	s.manager.Cleanup()
	return nil
}

// IsDisabled returns true if audio is unavailable
func (s *AudioService) IsDisabled() bool {
	return s.disabled.Load()
}

// Manager returns the cue player; its methods are safe no-ops when disabled
func (s *AudioService) Manager() *SoundManager {
	return s.manager
}
