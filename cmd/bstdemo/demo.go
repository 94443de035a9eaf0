package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"bst_code/bst"

	"github.com/urfave/cli/v2"
)

func setupLogger(w io.Writer, format, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	hopts := slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	switch format {
	case "text":
		handler = slog.NewTextHandler(w, &hopts)
	case "json":
		handler = slog.NewJSONHandler(w, &hopts)
	default:
		return nil, fmt.Errorf("unknown log format: %#v", format)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger, nil
}

func toInt32s(flag string, vals []int) ([]int32, error) {
	out := make([]int32, 0, len(vals))
	for _, v := range vals {
		if v < math.MinInt32 || v > math.MaxInt32 {
			return nil, fmt.Errorf("--%s: %d does not fit in 32 bits", flag, v)
		}
		out = append(out, int32(v))
	}
	return out, nil
}

type printFunc func(w io.Writer, t *bst.Tree) error

func printer(style string) (printFunc, error) {
	switch style {
	case "indent":
		return func(w io.Writer, t *bst.Tree) error {
			return t.Fprint(w)
		}, nil
	case "branches":
		return func(w io.Writer, t *bst.Tree) error {
			_, err := io.WriteString(w, t.Branches())
			return err
		}, nil
	default:
		return nil, fmt.Errorf("unknown print style: %#v", style)
	}
}

func runDemo(cctx *cli.Context) error {
	logger, err := setupLogger(cctx.App.ErrWriter, cctx.String("log-format"), strings.ToLower(cctx.String("log-level")))
	if err != nil {
		return err
	}
	show, err := printer(cctx.String("style"))
	if err != nil {
		return err
	}
	inserts, err := toInt32s("insert", cctx.IntSlice("insert"))
	if err != nil {
		return err
	}
	removes, err := toInt32s("remove", cctx.IntSlice("remove"))
	if err != nil {
		return err
	}

	out := cctx.App.Writer
	tree := bst.New()
	for _, v := range inserts {
		if err := tree.Insert(v); err != nil {
			if cctx.Bool("strict") || !errors.Is(err, bst.ErrDuplicateKey) {
				return err
			}
			logger.Warn("skipping duplicate insert", "value", v)
			continue
		}
		logger.Debug("inserted", "value", v, "size", tree.Len())
	}
	if err := show(out, tree); err != nil {
		return err
	}

	if len(removes) == 0 {
		return nil
	}
	for _, v := range removes {
		if !tree.Remove(v) {
			logger.Warn("value not present", "value", v)
			continue
		}
		logger.Debug("removed", "value", v, "size", tree.Len())
	}
	return show(out, tree)
}
