package main

import (
	"fmt"
	"os"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "bstdemo",
		Usage:   "build an integer binary search tree and print its shape",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.IntSliceFlag{
				Name:    "insert",
				Usage:   "values to insert, in order",
				Value:   cli.NewIntSlice(5, 3, 7, 2, 4, 6, 8),
				EnvVars: []string{"BST_INSERT"},
			},
			&cli.IntSliceFlag{
				Name:    "remove",
				Usage:   "values to remove after inserting, in order",
				Value:   cli.NewIntSlice(3),
				EnvVars: []string{"BST_REMOVE"},
			},
			&cli.StringFlag{
				Name:    "style",
				Usage:   "print style: indent or branches",
				Value:   "indent",
				EnvVars: []string{"BST_STYLE"},
			},
			&cli.BoolFlag{
				Name:    "strict",
				Usage:   "fail on duplicate insert instead of skipping it",
				EnvVars: []string{"BST_STRICT"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "log output format: text or json",
				Value:   "text",
				EnvVars: []string{"BST_LOG_FORMAT"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity level (eg: warn, info, debug)",
				Value:   "info",
				EnvVars: []string{"BST_LOG_LEVEL"},
			},
		},
		Action: runDemo,
	}
}

func run(args []string) error {
	return newApp().Run(args)
}
