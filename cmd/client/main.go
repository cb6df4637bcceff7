package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cbodonnell/pingpong/client/game"
	"github.com/cbodonnell/pingpong/client/objects"
	"github.com/cbodonnell/pingpong/pkg/game/constants"
	"github.com/cbodonnell/pingpong/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	logLevel := flag.String("log-level", "info", "Log level")
	seed := flag.Int64("seed", 0, "Seed of the menu rain, 0 uses the current time")
	edgeTrigger := flag.Bool("edge-trigger", false, "Fire buttons once per press instead of while held")
	debug := flag.Bool("debug", false, "Show the debug overlay")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	trigger := objects.TriggerHeld
	if *edgeTrigger {
		trigger = objects.TriggerPress
	}
	log.Debug("Seed %d, button trigger %s", *seed, trigger)

	g, err := game.NewGame(game.NewGameOptions{
		Debug:   *debug,
		Seed:    *seed,
		Trigger: trigger,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(constants.ScreenWidth, constants.ScreenHeight)
	ebiten.SetWindowTitle("Ping Pong")
	if err := ebiten.RunGame(g); err != nil {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
}
