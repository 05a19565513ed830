package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/klippa-app/go-pdfium/webassembly"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/ivanvanderbyl/tablegrid"
)

func main() {
	cmd := &cli.Command{
		Name:  "tablegrid",
		Usage: "Seed and edit table grids over PDF pages",
		Commands: []*cli.Command{
			{
				Name:  "inspect",
				Usage: "Print the table grid seeded from a PDF page",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "Input PDF file path",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "page",
						Usage: "Page number (0-indexed)",
						Value: 0,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output layout YAML path (default: stdout)",
					},
					&cli.BoolFlag{
						Name:  "metrics",
						Usage: "Log seeding metrics",
					},
				},
				Action: inspect,
			},
			{
				Name:  "replay",
				Usage: "Replay an editing script against a layout and print the result",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "layout",
						Aliases: []string{"l"},
						Usage:   "Layout YAML path",
					},
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"i"},
						Usage:   "Input PDF file path, used when no layout is given",
					},
					&cli.IntFlag{
						Name:  "page",
						Usage: "Page number (0-indexed)",
						Value: 0,
					},
					&cli.StringFlag{
						Name:     "script",
						Aliases:  []string{"s"},
						Usage:    "Event script YAML path",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output layout YAML path (default: stdout)",
					},
					&cli.BoolFlag{
						Name:    "verbose",
						Aliases: []string{"v"},
						Usage:   "Log every committed edit",
					},
				},
				Action: replay,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func inspect(_ context.Context, cmd *cli.Command) error {
	settings := tablegrid.DefaultSeedSettings()
	settings.EnableMetricsLogging = cmd.Bool("metrics")

	layout, err := seedFromPDF(cmd.String("input"), int(cmd.Int("page")), settings)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Found %d vertical and %d horizontal lines\n",
		len(layout.Structure.VerticalLines), len(layout.Structure.HorizontalLines))
	return writeLayout(layout, cmd.String("output"))
}

func replay(_ context.Context, cmd *cli.Command) error {
	var (
		layout *tablegrid.Layout
		err    error
	)
	switch {
	case cmd.String("layout") != "":
		layout, err = tablegrid.LoadLayoutYAML(cmd.String("layout"))
	case cmd.String("input") != "":
		layout, err = seedFromPDF(cmd.String("input"), int(cmd.Int("page")), tablegrid.DefaultSeedSettings())
	default:
		return fmt.Errorf("either --layout or --input is required")
	}
	if err != nil {
		return err
	}

	script, err := tablegrid.LoadScript(cmd.String("script"))
	if err != nil {
		return err
	}

	sched := tablegrid.NewManualScheduler()
	config := tablegrid.DefaultConfig()
	config.Scheduler = sched
	config.EnableEventLogging = cmd.Bool("verbose")

	commits := 0
	editor, err := tablegrid.NewEditor(layout.Structure, layout.Polygon, script.Viewport, config, tablegrid.Callbacks{
		OnStructureChanged: func(vertical, horizontal []tablegrid.Line) {
			commits++
			layout.Structure = tablegrid.TableStructure{
				VerticalLines:   vertical,
				HorizontalLines: horizontal,
			}
		},
	})
	if err != nil {
		return err
	}
	defer editor.Close()

	if err := tablegrid.Replay(editor, sched, script); err != nil {
		return fmt.Errorf("failed to replay script: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Replayed %d events, %d structure changes\n", len(script.Events), commits)
	return writeLayout(layout, cmd.String("output"))
}

func seedFromPDF(path string, page int, settings tablegrid.SeedSettings) (*tablegrid.Layout, error) {
	pool, err := webassembly.Init(webassembly.Config{
		MinIdle:  1,
		MaxIdle:  1,
		MaxTotal: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialise pdfium: %w", err)
	}
	defer pool.Close()

	instance, err := pool.GetInstance(time.Second * 30)
	if err != nil {
		return nil, fmt.Errorf("failed to get pdfium instance: %w", err)
	}

	layout, err := tablegrid.NewLoaderWithSettings(instance, settings).LoadFile(path, page)
	if err != nil {
		return nil, fmt.Errorf("failed to seed layout: %w", err)
	}
	return layout, nil
}

func writeLayout(layout *tablegrid.Layout, outputPath string) error {
	data, err := yaml.Marshal(layout)
	if err != nil {
		return fmt.Errorf("failed to encode layout: %w", err)
	}

	if outputPath == "" {
		fmt.Print(string(data))
		return nil
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Layout written to %s\n", outputPath)
	return nil
}
