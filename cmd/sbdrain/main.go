package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/sbtools/sbdrain/internal/adapters/identity"
	"github.com/sbtools/sbdrain/internal/cliconfig"
	"github.com/sbtools/sbdrain/pkg/drain"
	"github.com/sbtools/sbdrain/pkg/log"
)

const helpDescription = `
Drain an Azure Service Bus topic subscription in batches.

By default sbdrain empties the dead-letter sub-queue and keeps going until
it is empty. With --active it drains the live queue instead, optionally
capped with --limit. Messages are received in receive-and-delete mode:
everything the tool receives is gone from the broker for good.

Authentication uses the SERVICE_BUS_CONNECTION_STR connection string when
present (environment, --env-file, or config file; never a flag). Without
one, sbdrain signs in to the configured namespace with Entra ID, trying
non-interactive credentials first and falling back to a browser sign-in.
`

var exampleUsage = strings.TrimSpace(`
  sbdrain --topic orders --subscription billing-sub
  sbdrain --topic orders --subscription billing-sub --active --limit 500
  SERVICE_BUS_NAMESPACE=ordersbus sbdrain --topic orders --subscription audit-sub
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string
	var envFile string

	zl := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "sbdrain",
		Short:   "Drain an Azure Service Bus topic subscription",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			// Load .env before reading the environment; exported variables win
			if err := cliconfig.LoadDotenv(envFile); err != nil {
				return err
			}

			// Load config file first (default $HOME/.sbdrain/config.toml), then apply flag overrides
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}
			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			// Apply environment variables
			// These override file config but are overridden by flags (checked via changed map)
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			// Log configuration (masking the connection string)
			logCfg := cfg
			if len(logCfg.ConnectionString) > 0 {
				logCfg.ConnectionString = "*****"
			}
			zl.Info().Interface("config", logCfg).Msg("configuration")

			// Convert cliconfig.Config to drain.Config
			queue := drain.QueueDeadLetter
			if cfg.Active {
				queue = drain.QueueActive
			}
			libCfg := drain.Config{
				ConnectionString: cfg.ConnectionString,
				Namespace:        cfg.Namespace,
				Topic:            cfg.Topic,
				Subscription:     cfg.Subscription,
				Queue:            queue,
				BatchSize:        cfg.BatchSize,
				MaxWait:          cfg.MaxWait,
				Limit:            cfg.Limit,
			}

			logger := log.NewZerologAdapterWithLogger(zl)
			provider := identity.NewProvider(identity.ServiceBusScope, !cfg.NoBrowser, logger)

			// Cancel the drain on SIGINT/SIGTERM; deletions already counted stand
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				select {
				case <-sigCh:
					zl.Info().Msg("received signal, stopping...")
					cancel()
				case <-ctx.Done():
				}
			}()

			result, err := drain.Run(ctx, libCfg,
				drain.WithLogger(logger),
				drain.WithCredentialProvider(provider),
			)
			if err != nil {
				if result.Deleted > 0 {
					return fmt.Errorf("drain interrupted after %d deletions: %w", result.Deleted, err)
				}
				return err
			}
			return nil
		},
	}

	// Flags
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.sbdrain/config.toml)")
	root.Flags().StringVar(&envFile, "env-file", "", "dotenv file loaded before reading the environment (default: ./.env when present)")

	root.Flags().StringVar(&cfg.Topic, "topic", cfg.Topic, "topic name")
	root.Flags().StringVar(&cfg.Subscription, "subscription", cfg.Subscription, "subscription name")
	root.Flags().StringVar(&cfg.Namespace, "namespace", cfg.Namespace, "namespace name or FQDN for Entra ID auth")

	root.Flags().BoolVar(&cfg.Active, "active", cfg.Active, "drain the active queue instead of the dead-letter sub-queue")
	root.Flags().BoolVar(&cfg.DLQ, "dlq", cfg.DLQ, "drain the dead-letter sub-queue (the default)")
	root.MarkFlagsMutuallyExclusive("active", "dlq")

	root.Flags().IntVar(&cfg.Limit, "limit", cfg.Limit, "maximum messages to delete from the active queue (-1 = no limit)")
	root.Flags().IntVar(&cfg.BatchSize, "batch", cfg.BatchSize, "maximum messages per receive call")
	root.Flags().DurationVar(&cfg.MaxWait, "wait", cfg.MaxWait, "maximum wait for the first message of a batch")
	root.Flags().BoolVar(&cfg.NoBrowser, "no-browser", cfg.NoBrowser, "disable the interactive browser sign-in fallback")

	if err := root.Execute(); err != nil {
		zl.Error().Err(err).Msg("sbdrain")
		os.Exit(1)
	}
}
