package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jacentio/canopy/display"
	"github.com/jacentio/canopy/store"
	"github.com/jacentio/canopy/stream"
)

type demoOptions struct {
	noColor  bool
	logLevel string
	feed     bool
	replay   bool
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "canopy",
		Short:         "In-memory hierarchical namespace",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newDemoCmd())
	return rootCmd
}

func newDemoCmd() *cobra.Command {
	opts := demoOptions{}
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Build a sample tree, print it, then delete a subtree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), opts.logLevel)
			if err != nil {
				return err
			}
			return runDemo(cmd.Context(), cmd.OutOrStdout(), logger, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable coloured output")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&opts.feed, "feed", false, "print the exported change feed as JSON")
	cmd.Flags().BoolVar(&opts.replay, "replay", false, "replay the change feed into a second namespace and print it")
	return cmd
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// runDemo walks through the reference scenario: create root, listen on it,
// add two children and a grandchild, print, list, delete child1, print.
func runDemo(ctx context.Context, out io.Writer, logger *slog.Logger, opts demoOptions) error {
	cfg := store.DefaultConfig()
	cfg.Logger = logger
	s := store.New[string](cfg)

	p := display.NewPrinter(out)
	if opts.noColor {
		p.SetColor(false)
	}

	recCfg := stream.DefaultConfig()
	recCfg.Logger = logger
	rec := stream.NewRecorder[string](recCfg)

	s.Create("/root", "nothing")
	if err := s.AddListener("/root", display.Listener[string](p)); err != nil {
		return err
	}
	if err := rec.Attach(s, "/root"); err != nil {
		return err
	}

	s.Create("/root/child1", "childdata 1")
	s.Create("/root/child2", "childdata 2")
	s.Create("/root/child1/subchild1", "subchild1_data")

	if err := display.Levels(p, s.Dump()); err != nil {
		return err
	}

	children, err := s.Children("/root")
	if err != nil {
		return err
	}
	if err := display.Children(p, "root", children); err != nil {
		return err
	}

	if err := s.Delete("/root/child1"); err != nil {
		return err
	}
	if err := display.Levels(p, s.Dump()); err != nil {
		return err
	}

	if opts.replay {
		replica := store.New[string](cfg)
		if err := stream.NewHandler(replica, logger).Apply(ctx, rec.Event()); err != nil {
			return fmt.Errorf("replay: %w", err)
		}
		if err := display.Levels(p, replica.Dump()); err != nil {
			return err
		}
	}

	if opts.feed {
		data, err := json.MarshalIndent(rec.Event(), "", "  ")
		if err != nil {
			return fmt.Errorf("encode feed: %w", err)
		}
		if _, err := fmt.Fprintln(out, string(data)); err != nil {
			return err
		}
	}
	return nil
}
