package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/vi-snake/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves with an optional linear glide
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewGlide(freq, freq, duration, wave, rate)
}

// NewGlide creates an oscillator sweeping linearly from freq to endFreq over duration
func NewGlide(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	o := &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
	if wave == WaveNoise {
		o.noise = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return o
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack, flat sustain and linear release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s by a linear gain
// math.Log2(0) is -Inf, so zero gain maps to a silent volume effect
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateCaptureSound is a rising two-note chime
func CreateCaptureSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewOscillator(constants.CaptureNote1Freq, constants.CaptureNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.CaptureNote1Duration, constants.CaptureAttack, constants.CaptureNote1Release, rate)

	n2 := NewOscillator(constants.CaptureNote2Freq, constants.CaptureNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constants.CaptureNote2Duration, constants.CaptureAttack, constants.CaptureNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), cfg.volume(CueCapture))
}

// CreateGameOverSound is a falling saw sweep layered with a short noise burst
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	sweep := NewGlide(constants.GameOverFreq, constants.GameOverLowFreq, constants.GameOverDuration, WaveSaw, rate)
	sweepShaped := NewEnvelope(sweep, constants.GameOverDuration, constants.GameOverAttack, constants.GameOverRelease, rate)

	noise := NewOscillator(0, constants.GameOverDuration/4, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, constants.GameOverDuration/4, constants.GameOverAttack, constants.GameOverDuration/8, rate)

	mixed := beep.Mix(
		newVolume(sweepShaped, 1-constants.GameOverNoiseMix),
		newVolume(noiseShaped, constants.GameOverNoiseMix),
	)
	return newVolume(mixed, cfg.volume(CueGameOver))
}

// CreateTurnSound is a very short sine tick
func CreateTurnSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(constants.TurnFreq, constants.TurnDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, constants.TurnDuration, constants.TurnAttack, constants.TurnRelease, rate)
	return newVolume(shaped, cfg.volume(CueTurn))
}

// GetCueStreamer returns a fresh streamer for cue, nil for unknown cues
func GetCueStreamer(cue Cue, cfg *AudioConfig) beep.Streamer {
	switch cue {
	case CueCapture:
		return CreateCaptureSound(cfg)
	case CueGameOver:
		return CreateGameOverSound(cfg)
	case CueTurn:
		return CreateTurnSound(cfg)
	default:
		return nil
	}
}
