// Package config resolves runtime settings: defaults, an optional YAML file, then environment
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "VI_SNAKE_"

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("config: invalid")

// Config is the complete runtime configuration for both binaries
type Config struct {
	Game     GameConfig     `yaml:"game" envPrefix:"GAME_"`
	UI       UIConfig       `yaml:"ui" envPrefix:"UI_"`
	Pipeline PipelineConfig `yaml:"pipeline" envPrefix:"PIPELINE_"`
	Audio    AudioConfig    `yaml:"audio" envPrefix:"AUDIO_"`
	Log      LogConfig      `yaml:"log" envPrefix:"LOG_"`
}

// GameConfig holds playfield geometry and simulation timing
type GameConfig struct {
	Width          int            `yaml:"width" env:"WIDTH"`
	Height         int            `yaml:"height" env:"HEIGHT"`
	Step           int            `yaml:"step" env:"STEP"`
	SnakeIconWidth int            `yaml:"snake_icon_width" env:"SNAKE_ICON_WIDTH"`
	PreyIconWidth  int            `yaml:"prey_icon_width" env:"PREY_ICON_WIDTH"`
	Threshold      int            `yaml:"threshold" env:"THRESHOLD"`
	PreyBuffer     int            `yaml:"prey_buffer" env:"PREY_BUFFER"`
	ScoreRegion    RectConfig     `yaml:"score_region" envPrefix:"SCORE_"`
	HeadX          int            `yaml:"head_x" env:"HEAD_X"`
	HeadY          int            `yaml:"head_y" env:"HEAD_Y"`
	Length         int            `yaml:"length" env:"LENGTH"`
	Heading        core.Direction `yaml:"heading" env:"HEADING"`
	Tick           time.Duration  `yaml:"tick" env:"TICK"`
	QueueCapacity  int            `yaml:"queue_capacity" env:"QUEUE_CAPACITY"`
	Seed           uint64         `yaml:"seed" env:"SEED"` // 0 seeds from the clock
}

// RectConfig is a serializable core.Rect
type RectConfig struct {
	MinX int `yaml:"min_x" env:"MIN_X"`
	MinY int `yaml:"min_y" env:"MIN_Y"`
	MaxX int `yaml:"max_x" env:"MAX_X"`
	MaxY int `yaml:"max_y" env:"MAX_Y"`
}

// UIConfig holds drainer timing
type UIConfig struct {
	DrainInterval time.Duration `yaml:"drain_interval" env:"DRAIN_INTERVAL"`
	JoinTimeout   time.Duration `yaml:"join_timeout" env:"JOIN_TIMEOUT"`
}

// PipelineConfig sizes the producer/consumer demo
type PipelineConfig struct {
	Producers     int           `yaml:"producers" env:"PRODUCERS"`
	Consumers     int           `yaml:"consumers" env:"CONSUMERS"`
	Items         int           `yaml:"items" env:"ITEMS"`
	Min           int           `yaml:"min" env:"MIN"`
	Max           int           `yaml:"max" env:"MAX"`
	MaxJitter     time.Duration `yaml:"max_jitter" env:"MAX_JITTER"`
	QueueCapacity int           `yaml:"queue_capacity" env:"QUEUE_CAPACITY"`
	Seed          uint64        `yaml:"seed" env:"SEED"`
}

// AudioConfig controls the optional sound cues
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled" env:"ENABLED"`
	MasterVolume float64 `yaml:"master_volume" env:"MASTER_VOLUME"`
}

// LogConfig controls file logging of the game binary
type LogConfig struct {
	Debug bool   `yaml:"debug" env:"DEBUG"`
	Dir   string `yaml:"dir" env:"DIR"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Game: GameConfig{
			Width:          constants.FieldWidth,
			Height:         constants.FieldHeight,
			Step:           constants.MoveStep,
			SnakeIconWidth: constants.SnakeIconWidth,
			PreyIconWidth:  constants.PreyIconWidth,
			Threshold:      constants.EdgeThreshold,
			PreyBuffer:     constants.PreyBuffer,
			ScoreRegion: RectConfig{
				MinX: constants.ScoreRegionMinX,
				MinY: constants.ScoreRegionMinY,
				MaxX: constants.ScoreRegionMaxX,
				MaxY: constants.ScoreRegionMaxY,
			},
			HeadX:         constants.InitialHeadX,
			HeadY:         constants.InitialHeadY,
			Length:        constants.InitialLength,
			Heading:       core.DirLeft,
			Tick:          constants.TickInterval,
			QueueCapacity: constants.GameQueueCapacity,
		},
		UI: UIConfig{
			DrainInterval: constants.DrainInterval,
			JoinTimeout:   constants.ShutdownJoinTimeout,
		},
		Pipeline: PipelineConfig{
			Producers:     constants.ProducerCount,
			Consumers:     constants.ConsumerCount,
			Items:         constants.ItemsPerProducer,
			Min:           constants.ItemMin,
			Max:           constants.ItemMax,
			MaxJitter:     constants.MaxJitter,
			QueueCapacity: constants.PipelineQueueCapacity,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: constants.DefaultMasterVolume,
		},
		Log: LogConfig{
			Dir: constants.LogDir,
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when empty) and the environment
// The result is validated
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := decodeYAML(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := ApplyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overlays VI_SNAKE_* environment variables onto cfg
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Write emits cfg as YAML
func (c Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
