package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"task-intelligence/config"
	"task-intelligence/internal/bootstrap"
	"task-intelligence/pkg/log"
)

// builder assembles the engine for one command invocation.
type builder func(ctx context.Context, verbose bool) (*bootstrap.Stack, error)

func defaultBuilder(ctx context.Context, verbose bool) (*bootstrap.Stack, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// Keep stdout clean for command output unless asked otherwise.
	level := "error"
	if verbose {
		level = cfg.Logger.Level
	}
	logger := log.Init(log.ZapConfig{
		Level:        level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	return bootstrap.Build(ctx, cfg, logger, nil)
}

type cli struct {
	build   builder
	verbose bool
}

// withStack builds the engine, runs fn and releases storage.
func (c *cli) withStack(cmd *cobra.Command, fn func(*bootstrap.Stack) error) error {
	stack, err := c.build(cmd.Context(), c.verbose)
	if err != nil {
		return err
	}
	defer stack.Close()
	return fn(stack)
}

func newRootCmd(build builder) *cobra.Command {
	c := &cli{build: build}

	root := &cobra.Command{
		Use:   "aictl",
		Short: "Manage AI providers and ask for task suggestions",
		Long: `aictl talks to the same storage as the API server.

Configure a provider once, pick it as active, then ask for duration
estimates or full task analyses from the command line.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Log engine activity to stderr")

	root.AddCommand(c.providersCmd())
	root.AddCommand(c.estimateCmd())
	root.AddCommand(c.analyzeCmd())
	return root
}
