package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sonnes/chitrashala/manifest"
	"github.com/sonnes/chitrashala/render/terminal"
	"github.com/urfave/cli/v3"
)

func indexCmd() *cli.Command {
	return &cli.Command{
		Name:  "index",
		Usage: "Generate data/gallery_index.json from images/<missionId>/",
		Description: `Scans images/ in the current directory. Each direct subdirectory is a
mission; its .jpg, .jpeg, .png and .webp files are listed in the manifest.
The manifest is rebuilt from scratch on every run.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			return writeIndex(cwd, time.Now(), cmd.Root().Writer)
		},
	}
}

// writeIndex builds the manifest for root/images, writes it to
// root/data/gallery_index.json and prints a one-line summary to w.
func writeIndex(root string, now time.Time, w io.Writer) error {
	m, err := manifest.Build(filepath.Join(root, manifest.DefaultImagesDir), now)
	if err != nil {
		return err
	}

	if err := m.WriteFile(filepath.Join(root, manifest.DefaultPath)); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	terminal.IndexWritten(w, manifest.DefaultPath, m.MissionCount(), m.ImageCount())
	return nil
}
