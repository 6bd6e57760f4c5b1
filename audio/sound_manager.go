package audio

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-snake/constants"
)

// SoundManager plays game cues on the speaker
// Every Play method is a no-op until Initialize succeeds, so the game runs without audio
type SoundManager struct {
	cfg *AudioConfig

	mu          sync.Mutex
	initialized bool
	muted       atomic.Bool

	played atomic.Int64
}

// NewSoundManager creates an uninitialized manager
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{cfg: cfg}
}

// Initialize opens the speaker
// Returns ErrDisabled when audio is off in config; other errors mean no usable device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}
	sm.initialized = true
	return nil
}

// Cleanup stops playing cues and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// Play starts cue, returns false if nothing was queued
func (sm *SoundManager) Play(cue Cue) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.IsMuted() {
		return false
	}
	s := GetCueStreamer(cue, sm.cfg)
	if s == nil {
		log.Printf("audio: unknown cue %d", cue)
		return false
	}
	speaker.Play(s)
	sm.played.Add(1)
	return true
}

// PlayCapture implements render.CuePlayer
func (sm *SoundManager) PlayCapture() { sm.Play(CueCapture) }

// PlayGameOver implements render.CuePlayer
func (sm *SoundManager) PlayGameOver() { sm.Play(CueGameOver) }

// PlayTurn plays the heading-change tick
func (sm *SoundManager) PlayTurn() { sm.Play(CueTurn) }

// ToggleMute flips mute, returns the new state
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// IsMuted reports the mute state
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// IsInitialized reports whether the speaker is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Played returns the number of cues handed to the speaker
func (sm *SoundManager) Played() int64 {
	return sm.played.Load()
}
