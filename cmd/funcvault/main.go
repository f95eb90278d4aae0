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
	"github.com/sbtools/sbdrain/internal/funcapp"
	"github.com/sbtools/sbdrain/pkg/log"
)

const helpDescription = `
Publish a Function App's invocation URLs into an Azure Key Vault.

funcvault lists the functions of the app, fetches each function's default
key, and writes one function-url-<function> secret per function, after
seeding the vault with the SubscriptionId and DBResourceGroup secrets.
With --list it only prints the URLs and writes nothing.

Authentication uses Entra ID: non-interactive credentials first, then a
browser sign-in unless --no-browser is set.
`

var exampleUsage = strings.TrimSpace(`
  funcvault --subscription-id 0000-1111 --resource-group orders-rg \
      --data-resource-group orders-data-rg --function-app orders-app --vault orders-vault
  funcvault --subscription-id 0000-1111 --resource-group orders-rg --function-app orders-app --list
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := funcapp.DefaultConfig()

	zl := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "funcvault",
		Short:   "Publish Function App invocation URLs into a Key Vault",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			funcapp.ApplyEnvConfig(&cfg, changed)

			if err := cfg.Validate(); err != nil {
				return err
			}
			zl.Info().Interface("config", cfg).Msg("configuration")

			logger := log.NewZerologAdapterWithLogger(zl)
			provider := identity.NewProvider(identity.ARMScope, !cfg.NoBrowser, logger)

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

			cred, mechanism, err := provider.Acquire(ctx)
			if err != nil {
				return err
			}
			zl.Info().Str("mechanism", mechanism).Msg("credential acquired")

			lister, err := funcapp.NewARMLister(cfg.SubscriptionID, cfg.ResourceGroup, cfg.FunctionApp, cred)
			if err != nil {
				return err
			}

			if cfg.List {
				syncer := funcapp.NewSyncer(cfg, lister, nil, logger)
				urls, err := syncer.List(ctx)
				if err != nil {
					return err
				}
				for _, u := range urls {
					fmt.Println(u)
				}
				return nil
			}

			writer, err := funcapp.NewVaultWriter(funcapp.VaultURL(cfg.Vault), cred)
			if err != nil {
				return err
			}
			syncer := funcapp.NewSyncer(cfg, lister, writer, logger)
			return syncer.Run(ctx)
		},
	}

	// Flags
	root.Flags().StringVar(&cfg.SubscriptionID, "subscription-id", cfg.SubscriptionID, "Azure subscription id")
	root.Flags().StringVar(&cfg.ResourceGroup, "resource-group", cfg.ResourceGroup, "resource group of the function app")
	root.Flags().StringVar(&cfg.DataResourceGroup, "data-resource-group", cfg.DataResourceGroup, "resource group of the data resources, seeded as the DBResourceGroup secret")
	root.Flags().StringVar(&cfg.FunctionApp, "function-app", cfg.FunctionApp, "function app name")
	root.Flags().StringVar(&cfg.Vault, "vault", cfg.Vault, "key vault name")
	root.Flags().BoolVar(&cfg.List, "list", cfg.List, "print the function URLs without writing secrets")
	root.Flags().BoolVar(&cfg.NoBrowser, "no-browser", cfg.NoBrowser, "disable the interactive browser sign-in fallback")

	if err := root.Execute(); err != nil {
		zl.Error().Err(err).Msg("funcvault")
		os.Exit(1)
	}
}
