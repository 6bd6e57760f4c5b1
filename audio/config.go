package audio

import (
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/constants"
)

// AudioConfig holds runtime audio settings
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64
	SampleRate   int
	CueVolumes   [cueCount]float64
}

// DefaultAudioConfig returns the built-in mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constants.DefaultMasterVolume,
		SampleRate:   constants.AudioSampleRate,
		CueVolumes: [cueCount]float64{
			CueCapture:  0.6,
			CueGameOver: 0.8,
			CueTurn:     0.15,
		},
	}
}

// FromConfig applies the audio section of the resolved configuration
func FromConfig(c config.AudioConfig) *AudioConfig {
	cfg := DefaultAudioConfig()
	cfg.Enabled = c.Enabled
	cfg.MasterVolume = min(max(c.MasterVolume, 0), 1)
	return cfg
}

// volume returns the effective gain for a cue
func (c *AudioConfig) volume(cue Cue) float64 {
	if cue < 0 || cue >= cueCount {
		return 0
	}
	return c.CueVolumes[cue] * c.MasterVolume
}
