package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	landscape "github.com/NetfallNetworks/weather-landscape"
	"github.com/NetfallNetworks/weather-landscape/owm"
)

func newLogger(verbose bool) (*zap.SugaredLogger, error) {
	var l *zap.Logger
	var err error
	if verbose {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}

func parseEvents(specs []string) ([]landscape.EventOverlay, error) {
	var out []landscape.EventOverlay
	for _, s := range specs {
		ts, glyph, ok := strings.Cut(s, ":")
		if !ok {
			return nil, fmt.Errorf("event %q: want TIMESTAMP:GLYPH", s)
		}
		t, err := strconv.ParseInt(ts, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("event %q: %w", s, err)
		}
		out = append(out, landscape.EventOverlay{Time: t, Glyph: glyph})
	}
	return out, nil
}

func writeOutput(dir string, b []byte, meta landscape.Metadata) error {
	name := "landscape_" + meta.Variant
	ext := landscape.ParseVariant(meta.Variant).Extension()

	if err := os.WriteFile(filepath.Join(dir, name+ext), b, 0o644); err != nil {
		return err
	}
	side, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, name+".json"), side, 0o644)
}

func main() {
	_ = godotenv.Load()

	app := cli.NewApp()
	app.Name = "landscape"
	app.Usage = "render weather forecasts as landscape images"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
		&cli.IntFlag{
			Name:    "width",
			EnvVars: []string{"LANDSCAPE_WIDTH"},
			Value:   landscape.DefaultWidth,
			Usage:   "canvas width in pixels",
		},
		&cli.IntFlag{
			Name:    "height",
			EnvVars: []string{"LANDSCAPE_HEIGHT"},
			Value:   landscape.DefaultHeight,
			Usage:   "canvas height in pixels",
		},
		&cli.StringFlag{
			Name:    "units",
			EnvVars: []string{"LANDSCAPE_UNITS"},
			Value:   "celsius",
			Usage:   "temperature units for labels (celsius or fahrenheit)",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "render",
			Usage:     "Render a forecast bundle to an image",
			ArgsUsage: "FORECAST.json",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "variant",
					Value: landscape.VariantRGBLight.String(),
					Usage: "output variant (rgb_light, rgb_dark, bw, bw_inverted, eink)",
				},
				&cli.BoolFlag{
					Name:  "all",
					Usage: "render every variant",
				},
				&cli.StringFlag{
					Name:  "out",
					Value: ".",
					Usage: "output directory",
				},
				&cli.StringSliceFlag{
					Name:  "event",
					Usage: "event overlay as TIMESTAMP:GLYPH, repeatable",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, "render", 1)
				}

				logger, err := newLogger(c.Bool("verbose"))
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer logger.Sync()

				data, err := os.ReadFile(c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}

				forecast, tl, loc, err := owm.Parse(data)
				if err != nil {
					return cli.Exit(err, 1)
				}

				events, err := parseEvents(c.StringSlice("event"))
				if err != nil {
					return cli.Exit(err, 1)
				}

				units := landscape.UnitCelsius
				if strings.HasPrefix(strings.ToLower(c.String("units")), "f") {
					units = landscape.UnitFahrenheit
				}

				engine := landscape.New(landscape.Config{
					Width:    c.Int("width"),
					Height:   c.Int("height"),
					Units:    units,
					Location: loc,
				}, logger)

				dir := c.String("out")
				if c.Bool("all") {
					all, err := engine.RenderAll(forecast, tl, events)
					if err != nil {
						return cli.Exit(err, 1)
					}
					for _, r := range all {
						if err := writeOutput(dir, r.Bytes, r.Meta); err != nil {
							return cli.Exit(err, 1)
						}
					}
					return nil
				}

				b, meta, err := engine.Render(forecast, tl, events, landscape.ParseVariant(c.String("variant")))
				if err != nil {
					return cli.Exit(err, 1)
				}
				if err := writeOutput(dir, b, meta); err != nil {
					return cli.Exit(err, 1)
				}
				return nil
			},
		},
		{
			Name:  "variants",
			Usage: "List supported output variants",
			Action: func(c *cli.Context) error {
				for _, v := range landscape.Variants {
					fmt.Printf("%s\t%s\n", v, v.Extension())
				}
				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
