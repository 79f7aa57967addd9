package main

import (
	"context"
	"github.com/cockroachdb/errors"
	"github.com/litetable/versiontable/internal/app"
	"github.com/litetable/versiontable/internal/cdc"
	"github.com/litetable/versiontable/internal/config"
	"github.com/litetable/versiontable/internal/reaper"
	"github.com/litetable/versiontable/internal/server/grpc"
	"github.com/litetable/versiontable/internal/store"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"os"
	"time"
)

const serviceName = "VersionTable"

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		log.Error().Err(err).Msg("exiting")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "versiontable",
		Short:         "an in-memory, multi-version wide-column table store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	serve := &cobra.Command{
		Use:   "serve",
		Short: "run the VersionTable gRPC server",
		Long: `
Start the VersionTable server. Settings are read from the YAML file given with
--config (or ./versiontable.yaml when present); any flag set on the command line
overrides the file.
`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
	config.RegisterFlags(serve.Flags())

	root.AddCommand(serve)
	return root
}

func runServe(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return err
	}
	setupLogging(cfg)

	application, err := initialize(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to initialize")
	}
	return application.Run(cmd.Context())
}

func setupLogging(cfg *config.Config) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if cfg.ConsoleLogs() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

func initialize(cfg *config.Config) (*app.App, error) {
	var deps []app.Dependency

	scope, err := cfg.Scope()
	if err != nil {
		return nil, err
	}

	// the stream subscribes on construction, so events from table bootstrap are queued for it
	changes, err := cdc.New(&cdc.Config{})
	if err != nil {
		return nil, err
	}
	deps = append(deps, changes)

	if cfg.CDCPort > 0 {
		stream, err := cdc.NewStream(&cdc.StreamConfig{
			Address: cfg.CDCAddress,
			Port:    cfg.CDCPort,
			Manager: changes,
		})
		if err != nil {
			return nil, err
		}
		deps = append(deps, stream)
	}

	tables, err := store.New(&store.Config{
		ShardCount:  cfg.ShardCount,
		DeleteScope: scope,
		CDC:         changes,
	})
	if err != nil {
		return nil, err
	}

	for _, t := range cfg.Tables {
		if tables.TableExists(t.Name) {
			continue
		}
		if _, err := tables.CreateTable(t.Name, t.FamilySpecs()...); err != nil {
			return nil, errors.Wrapf(err, "failed to create configured table %s", t.Name)
		}
		log.Info().Str("table", t.Name).Msg("created configured table")
	}

	gc, err := reaper.New(&reaper.Config{
		Store:    tables,
		Interval: cfg.ReaperInterval,
	})
	if err != nil {
		return nil, err
	}
	deps = append(deps, gc)

	srv, err := grpc.NewServer(&grpc.Config{
		Address:   cfg.ServerAddress,
		Port:      cfg.ServerPort,
		Store:     tables,
		RateLimit: cfg.RateLimit,
		RateBurst: cfg.RateBurst,
		CertFile:  cfg.TLSCertFile,
		KeyFile:   cfg.TLSKeyFile,
	})
	if err != nil {
		return nil, err
	}
	deps = append(deps, srv)

	return app.CreateApp(&app.Config{
		ServiceName: serviceName,
		StopTimeout: cfg.StopTimeout,
	}, deps...)
}
