package main

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/sonnes/chitrashala/config"
	"github.com/sonnes/chitrashala/optimize"
	"github.com/sonnes/chitrashala/render/terminal"
	"github.com/sonnes/chitrashala/scan"
	"github.com/urfave/cli/v3"
)

const defaultOptimizeRoot = "images"

func optimizeCmd() *cli.Command {
	return &cli.Command{
		Name:      "optimize",
		Usage:     "Re-encode JPEG/PNG images as WebP, replacing the originals",
		ArgsUsage: "[root]",
		Description: `Walks root (default: images) recursively. Every .jpg, .jpeg and .png file
is decoded, scaled down to the maximum width if wider, and written as a .webp
sibling. The original is deleted once the WebP file is in place. Files whose
.webp sibling already exists are skipped.

Parameters are read from WEBP_QUALITY, MAX_W and WEBP_METHOD (optionally set
in a .env file); flags override them.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "quality",
				Aliases: []string{"q"},
				Usage:   "WebP quality, 0-100 (default $WEBP_QUALITY or 80)",
			},
			&cli.IntFlag{
				Name:  "max-width",
				Usage: "Downsample images wider than this, 0 disables (default $MAX_W or 1920)",
			},
			&cli.IntFlag{
				Name:  "method",
				Usage: "Compression effort, 0 (fastest) to 6 (smallest) (default $WEBP_METHOD or 6)",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "Load parameters from this file; existing variables win",
				Value: ".env",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := config.LoadEnv(cmd.String("env-file")); err != nil {
				return err
			}

			opts, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			if cmd.IsSet("quality") {
				opts.Quality = cmd.Int("quality")
			}
			if cmd.IsSet("max-width") {
				opts.MaxWidth = cmd.Int("max-width")
			}
			if cmd.IsSet("method") {
				opts.Method = cmd.Int("method")
			}
			if err := opts.Validate(); err != nil {
				return err
			}

			root := defaultOptimizeRoot
			if cmd.Args().Present() {
				root = cmd.Args().First()
			}

			return runOptimize(root, opts, cmd.Root().Writer)
		},
	}
}

// runOptimize converts every eligible image under root and prints per-file
// lines and the summary to w. A missing root exits with status 1 before any
// work is done.
func runOptimize(root string, opts optimize.Options, w io.Writer) error {
	if !scan.Exists(root) {
		fmt.Fprintf(w, "Root not found: %s\n", root)
		return cli.Exit("", 1)
	}

	log.Debug("optimizing", "root", root, "quality", opts.Quality, "max_width", opts.MaxWidth, "method", opts.Method)

	report := terminal.NewReport(w)
	totals, err := optimize.New(opts).Run(root, report)
	if err != nil {
		return err
	}

	report.Summary(totals)
	return nil
}
