package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/term"
	"github.com/sonnes/chitrashala/manifest"
	"github.com/urfave/cli/v3"
)

func showCmd() *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Print the gallery manifest",
		Description: `Reads the manifest written by cs index and prints it. Output formats:
json (default, highlighted on a terminal), compact, missions, html.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Path to gallery_index.json",
				Value:   manifest.DefaultPath,
			},
			&cli.StringFlag{
				Name:  "o",
				Usage: "Output format: json, compact, missions, html",
				Value: "json",
			},
			&cli.BoolFlag{
				Name:  "plain",
				Usage: "Disable syntax highlighting",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			color := !cmd.Bool("plain") && term.IsTerminal(os.Stdout.Fd())
			return showManifest(newApp(), cmd.String("file"), cmd.String("o"), color, cmd.Root().Writer)
		},
	}
}

// showManifest reads the manifest at path and writes it to w in the named
// format.
func showManifest(a *app, path, format string, color bool, w io.Writer) error {
	rnd, err := a.renderer(format, color)
	if err != nil {
		return err
	}

	m, err := manifest.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s not found, run cs index first", path)
	}
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}

	if err := m.Validate(); err != nil {
		log.Warn("manifest is inconsistent", "path", path, "error", err)
	}

	if err := rnd.Render(w, m); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
