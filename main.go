package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/wheel/pkg/app"
	"github.com/decker502/wheel/pkg/config"
	"github.com/decker502/wheel/pkg/embedded"
	"github.com/decker502/wheel/pkg/wheel"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	configPath string
	seed       uint64
	fixedFont  bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "wheel",
	Short: "Spin-the-wheel picker",
	Long: `wheel shows one or more fortune wheels side by side. Click a wheel (or press
Space) to spin it; when it stops, the section under the pointer is announced.

Wheels are defined in a YAML file; without --config the built-in wheels are used.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		embedded.Init(dataFS)
		if !verbose {
			log.SetOutput(io.Discard)
			log.SetFlags(0)
		}
	},
	RunE: runWindow,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "wheel definition YAML file (default: built-in wheels)")
	flags.Uint64Var(&seed, "seed", 0, "random seed for spin velocities and generated colors (0 = time based)")
	flags.BoolVar(&fixedFont, "fixed-font", false, "always draw labels at 18px instead of sizing them by length")
	flags.BoolVar(&verbose, "verbose", false, "enable verbose logging")
}

func runWindow(cmd *cobra.Command, args []string) error {
	gameApp, err := app.NewApp(app.Config{
		Verbose:    verbose,
		ConfigPath: configPath,
		Seed:       seed,
		FixedFont:  fixedFont,
	})
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Fortune Wheel")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(gameApp)
}

// loadWheel 加载配置并选出指定 ID 的转盘，id 为空时取第一个
func loadWheel(id string, rng wheel.RandSource) (*config.WheelConfig, error) {
	cfg, err := config.LoadWheelConfig(configPath, rng)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return &cfg.Wheels[0], nil
	}
	w, ok := cfg.Find(id)
	if !ok {
		return nil, fmt.Errorf("no wheel with id %q", id)
	}
	return w, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
