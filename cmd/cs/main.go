package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := rootCmd().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:  "cs",
		Usage: "Index and optimize mission image galleries",
		Description: `
       _     _ _                 _           _
   ___| |__ (_) |_ _ __ __ _ ___| |__   __ _| | __ _
  / __| '_ \| | __| '__/ _' / __| '_ \ / _' | |/ _' |
 | (__| | | | | |_| | | (_| \__ \ | | | (_| | | (_| |
  \___|_| |_|_|\__|_|  \__,_|___/_| |_|\__,_|_|\__,_|

 The picture hall: index mission folders and keep their images lean.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log",
				Usage: "Log level: debug, info, warn, error",
				Value: "error",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level, err := log.ParseLevel(cmd.String("log"))
			if err != nil {
				return ctx, err
			}
			log.SetLevel(level)
			return ctx, nil
		},
		Commands: []*cli.Command{
			indexCmd(),
			optimizeCmd(),
			showCmd(),
		},
	}
}
