package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

// options are the command-line overrides applied on top of the config file.
type options struct {
	configPath string
	width      int
	height     int
	smooth     bool
	noClamp    bool
	noWatch    bool
	grid       bool
	restore    bool
}

// apply overlays the set flags and the optional image argument onto cfg.
func (o options) apply(cfg Config, args []string) (Config, error) {
	if len(args) > 0 {
		cfg.Image = args[0]
	}
	if o.width > 0 {
		cfg.Window.Width = o.width
	}
	if o.height > 0 {
		cfg.Window.Height = o.height
	}
	if o.smooth && cfg.Zoom.Smoothing == 0 {
		cfg.Zoom.Smoothing = DefaultSmoothing
	}
	if o.noClamp {
		cfg.Clamp = false
	}
	if o.noWatch {
		cfg.Watch = false
	}
	if o.grid {
		cfg.Grid = true
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func run(cfg Config, restore bool) error {
	transform, err := cfg.Transform()
	if err != nil {
		return err
	}
	g := NewGame(cfg, transform)

	if restore {
		if state, err := LoadView(g.viewport, cfg.ViewFile); err != nil {
			log.Printf("could not restore view from %s: %v", cfg.ViewFile, err)
		} else if state.Image != "" && state.Image != cfg.Image {
			log.Printf("restored view was saved for %s, showing %s", state.Image, cfg.Image)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := g.loader.Start(ctx, cfg.Watch); err != nil {
		// The first load is already queued; only hot reload is lost.
		log.Println("hot reload disabled:", err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(g)
}

func newRootCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "mapview [image]",
		Short: "Pan and zoom around a map image",
		Long: `mapview shows a map image in a window. Drag to pan, scroll to zoom
around the cursor. The readout in the corner shows the position under the
cursor in map pixels or in a configured secondary coordinate system.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(opts.configPath, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}
			cfg, err = opts.apply(cfg, args)
			if err != nil {
				return err
			}
			return run(cfg, opts.restore)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", DefaultConfigPath, "Path to the YAML config file")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Window width (overrides config)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "Window height (overrides config)")
	cmd.Flags().BoolVar(&opts.smooth, "smooth", false, "Animate zoom steps")
	cmd.Flags().BoolVar(&opts.noClamp, "no-clamp", false, "Allow panning the map out of view")
	cmd.Flags().BoolVar(&opts.noWatch, "no-watch", false, "Do not reload the map when the file changes")
	cmd.Flags().BoolVar(&opts.grid, "grid", false, "Start with the pixel grid visible")
	cmd.Flags().BoolVar(&opts.restore, "restore", false, "Restore the last saved view")

	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
