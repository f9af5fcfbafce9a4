// SPDX-License-Identifier: MIT

// Package cli implements the bidirbench command tree.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/bidir/internal/config"
	"github.com/katalvlaran/bidir/internal/ctxlog"
	"github.com/katalvlaran/bidir/internal/telemetry"
)

// Version is stamped at build time with -ldflags.
var Version = "dev"

type app struct {
	cfgFile  string
	v        *viper.Viper
	cfg      config.Config
	inst     *telemetry.Instruments
	shutdown func(context.Context) error
}

// NewRootCommand builds a fresh command tree with its own viper instance.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "bidirbench",
		Short: "Benchmark bidirectional Dijkstra against the unidirectional baseline",
		Long: `bidirbench builds a graph (random, YAML edge list or OpenStreetMap extract),
runs bidirectional and unidirectional Dijkstra between two vertices, and
reports timings, expanded vertices and whether both agree on the optimum.`,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.teardown(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default ./"+config.FileName+".yaml or $HOME/"+config.FileName+".yaml)")
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(newBenchCommand(a), newQueryCommand(a), newGenCommand(a))

	return root
}

// Execute runs the command tree with ctx.
func Execute(ctx context.Context, args []string) error {
	root := NewRootCommand()
	root.SetArgs(args)

	return root.ExecuteContext(ctx)
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.BindFlags(a.v, cmd.Flags()); err != nil {
		return err
	}
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := ctxlog.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	ctx := ctxlog.WithLogger(cmd.Context(), logger)

	a.shutdown, err = telemetry.Init(ctx, telemetry.Settings{
		Enabled:        cfg.Telemetry.Enabled,
		Endpoint:       cfg.Telemetry.Endpoint,
		ServiceName:    cfg.Telemetry.ServiceName,
		ServiceVersion: Version,
		Writer:         cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	if a.inst, err = telemetry.NewInstruments(nil); err != nil {
		return errors.Join(err, a.teardown(ctx))
	}

	cmd.SetContext(ctx)
	logger.Debug("configuration loaded", "file", a.v.ConfigFileUsed())

	return nil
}

func (a *app) teardown(ctx context.Context) error {
	if a.shutdown == nil {
		return nil
	}
	err := a.shutdown(ctx)
	a.shutdown = nil

	return err
}
