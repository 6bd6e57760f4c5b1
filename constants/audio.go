package constants

import "time"

const (
	// AudioSampleRate is the speaker rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration sizes the speaker buffer
	AudioBufferDuration = 50 * time.Millisecond

	// DefaultMasterVolume scales every cue, 0.0 to 1.0
	DefaultMasterVolume = 0.5
)

// Capture cue: rising two-note chime
const (
	CaptureNote1Freq     = 987.77
	CaptureNote2Freq     = 1318.51
	CaptureNote1Duration = 60 * time.Millisecond
	CaptureNote2Duration = 160 * time.Millisecond
	CaptureAttack        = 5 * time.Millisecond
	CaptureNote1Release  = 30 * time.Millisecond
	CaptureNote2Release  = 120 * time.Millisecond
)

// Game over cue: falling saw sweep with a noise burst
const (
	GameOverFreq     = 220.0
	GameOverLowFreq  = 110.0
	GameOverDuration = 400 * time.Millisecond
	GameOverAttack   = 5 * time.Millisecond
	GameOverRelease  = 300 * time.Millisecond
	GameOverNoiseMix = 0.25
)

// Turn cue: very short tick on an accepted direction change
const (
	TurnFreq     = 1760.0
	TurnDuration = 25 * time.Millisecond
	TurnAttack   = 2 * time.Millisecond
	TurnRelease  = 15 * time.Millisecond
)
