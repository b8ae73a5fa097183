package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/lixenwraith/horde/core"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := makeApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "horde: %v\n", err)
		os.Exit(1)
	}
}

func makeApp() *cli.App {
	app := cli.NewApp()
	app.Name = "horde"
	app.Usage = "steering swarm sandbox in the terminal"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config, c", Usage: "scenario YAML file, built-in scenario when empty"},
		cli.IntFlag{Name: "agents", Usage: "extra monsters spawned before the first wave"},
		cli.Float64Flag{Name: "speed", Usage: "simulation speed multiplier, overrides the scenario"},
		cli.BoolFlag{Name: "debug", Usage: "write debug logs to logs/horde.log"},
		cli.BoolFlag{Name: "headless", Usage: "run without the terminal UI"},
		cli.IntFlag{Name: "frames", Usage: "stop after this many rendered frames, 0 runs until quit"},
		cli.BoolFlag{Name: "mute", Usage: "disable audio cues"},
	}
	app.Action = func(c *cli.Context) error {
		logFile := setupLogging(c.Bool("debug"))
		if logFile != nil {
			defer logFile.Close()
		}
		return run(options{
			configPath: c.String("config"),
			agents:     c.Int("agents"),
			speed:      c.Float64("speed"),
			headless:   c.Bool("headless"),
			frames:     c.Int("frames"),
			mute:       c.Bool("mute"),
		})
	}
	return app
}
