package funcapp

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/security/keyvault/azsecrets"

	"github.com/sbtools/sbdrain/pkg/log"
)

// SecretWriter stores named secrets in a vault.
type SecretWriter interface {
	SetSecret(ctx context.Context, name, value string) error
}

// VaultWriter writes secrets to an Azure Key Vault.
type VaultWriter struct {
	client *azsecrets.Client
}

// NewVaultWriter creates a writer against the given vault endpoint.
func NewVaultWriter(vaultURL string, cred azcore.TokenCredential) (*VaultWriter, error) {
	client, err := azsecrets.NewClient(vaultURL, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("create key vault client: %w", err)
	}
	return &VaultWriter{client: client}, nil
}

// SetSecret creates or updates a secret.
func (w *VaultWriter) SetSecret(ctx context.Context, name, value string) error {
	params := azsecrets.SetSecretParameters{Value: &value}
	if _, err := w.client.SetSecret(ctx, name, params, nil); err != nil {
		return fmt.Errorf("set secret %s: %w", name, err)
	}
	return nil
}

// Syncer publishes a Function App's invocation URLs into a vault.
type Syncer struct {
	config Config
	lister FunctionLister
	writer SecretWriter
	logger log.Logger
}

// NewSyncer creates a syncer. The writer may be nil when only List is used.
func NewSyncer(config Config, lister FunctionLister, writer SecretWriter, logger log.Logger) *Syncer {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Syncer{config: config, lister: lister, writer: writer, logger: logger}
}

// Run seeds the vault with the SubscriptionId and DBResourceGroup secrets,
// then writes one function-url-<function> secret per function of the app.
func (s *Syncer) Run(ctx context.Context) error {
	if err := s.writer.SetSecret(ctx, "SubscriptionId", s.config.SubscriptionID); err != nil {
		return err
	}
	if err := s.writer.SetSecret(ctx, "DBResourceGroup", s.config.DataResourceGroup); err != nil {
		return err
	}

	names, err := s.lister.ListFunctions(ctx)
	if err != nil {
		return err
	}
	s.logger.Info("functions listed",
		log.Int("count", len(names)),
		log.String("app", s.config.FunctionApp),
	)

	for _, fn := range names {
		key, err := s.lister.DefaultKey(ctx, fn)
		if err != nil {
			return err
		}
		url := FunctionURL(s.config.FunctionApp, fn, key)
		if err := s.writer.SetSecret(ctx, SecretNameFor(fn), url); err != nil {
			return err
		}
		s.logger.Info("secret written",
			log.String("function", fn),
			log.String("secret", SecretNameFor(fn)),
		)
	}
	return nil
}

// List returns the invocation URLs of the app's functions without writing
// anything.
func (s *Syncer) List(ctx context.Context) ([]string, error) {
	names, err := s.lister.ListFunctions(ctx)
	if err != nil {
		return nil, err
	}
	urls := make([]string, 0, len(names))
	for _, fn := range names {
		key, err := s.lister.DefaultKey(ctx, fn)
		if err != nil {
			return nil, err
		}
		urls = append(urls, FunctionURL(s.config.FunctionApp, fn, key))
	}
	return urls, nil
}
