package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/events"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/service"
	"github.com/lixenwraith/vi-snake/status"
	"github.com/lixenwraith/vi-snake/terminal"
)

var (
	configPath = flag.String("config", "", "Path to YAML config file")
	debugFlag  = flag.Bool("debug", false, "Write logs to the log directory")
	seedFlag   = flag.Uint64("seed", 0, "Prey placement seed, 0 for time-based")
	muteFlag   = flag.Bool("mute", false, "Disable sound cues")
	dumpConfig = flag.Bool("dump-config", false, "Print the resolved config as YAML and exit")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		return 2
	}

	// Flags take precedence over file and environment
	if *debugFlag {
		cfg.Log.Debug = true
	}
	if *seedFlag != 0 {
		cfg.Game.Seed = *seedFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	if *dumpConfig {
		if err := cfg.Write(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
			return 1
		}
		return 0
	}

	if cfg.Log.Dir != "" {
		logDir = cfg.Log.Dir
	}
	if logFile := setupLogging(cfg.Log.Debug); logFile != nil {
		defer logFile.Close()
	}
	session := uuid.New()
	log.SetPrefix(fmt.Sprintf("[%s] ", session.String()[:8]))
	log.Printf("session %s: field %dx%d tick %v seed %d", session, cfg.Game.Width, cfg.Game.Height, cfg.Game.Tick, cfg.Game.Seed)

	statusService := status.NewService(nil, log.Writer())
	reg := statusService.Registry()
	queue := events.NewQueue[events.GameEvent](cfg.Game.QueueCapacity)

	sim, err := engine.NewSimulation(cfg.Game, queue, core.NewRand(cfg.Game.Seed), reg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		return exitCode(err)
	}

	ts, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake: terminal: %v\n", err)
		return 1
	}
	screen := terminal.NewScreen(ts, cfg.Game.Field())
	sound := audio.NewService(audio.FromConfig(cfg.Audio))

	var drainer *render.Drainer
	host := terminal.NewHost(screen, terminal.Controls{
		Steer:      sim.Steer,
		GameOver:   func() bool { return drainer.Over() },
		OnTurn:     sound.Manager().PlayTurn,
		ToggleMute: sound.Manager().ToggleMute,
	})
	drainer = render.NewDrainer(queue, screen, host, cfg.UI.DrainInterval, reg)
	drainer.SetCues(sound.Manager())

	simService := engine.NewSimulationService(sim)
	simService.OnExit = func(err error) {
		if err != nil {
			host.Quit(err)
		}
	}

	hub := service.NewHub()
	for _, svc := range []service.Service{
		statusService,
		sound,
		terminal.NewService(screen, host),
		render.NewDrainerService(drainer, cfg.UI.JoinTimeout),
		simService,
	} {
		if err := hub.Register(svc); err != nil {
			fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
			return 1
		}
	}

	if err := hub.InitAll(); err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		return 1
	}
	if err := hub.StartAll(); err != nil {
		core.RegisterCrashTerminal(nil)
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := host.Run(ctx)
	stopErr := hub.StopAll()
	core.RegisterCrashTerminal(nil)

	if stopErr != nil {
		log.Printf("shutdown: %v", stopErr)
	}
	if runErr != nil {
		log.Printf("exit: %v", runErr)
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", runErr)
		return exitCode(runErr)
	}

	fmt.Printf("Final score: %d (%s)\n", sim.Score(), sim.Status())
	return 0
}

// exitCode maps a fatal game error to the process exit status
func exitCode(err error) int {
	if errors.Is(err, engine.ErrNoPreyCell) {
		return 3
	}
	return 1
}
