package identity

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"

	"github.com/sbtools/sbdrain/internal/domain"
	"github.com/sbtools/sbdrain/pkg/log"
)

// ServiceBusScope is the token scope probed when acquiring a credential for
// Service Bus data-plane access.
const ServiceBusScope = "https://servicebus.azure.net/.default"

// ARMScope is the token scope probed for Azure Resource Manager access.
const ARMScope = "https://management.azure.com/.default"

// Provider acquires an Azure credential for a given scope. Non-interactive
// sources (environment, workload identity, managed identity, CLI) are tried
// first; when they cannot produce a token, the provider falls back to an
// interactive browser sign-in if that is allowed.
type Provider struct {
	scope        string
	allowBrowser bool
	logger       log.Logger

	newDefault func() (azcore.TokenCredential, error)
	newBrowser func() (azcore.TokenCredential, error)
}

// NewProvider creates a credential provider probing the given scope.
// allowBrowser controls whether the interactive fallback may run.
func NewProvider(scope string, allowBrowser bool, logger log.Logger) *Provider {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Provider{
		scope:        scope,
		allowBrowser: allowBrowser,
		logger:       logger,
		newDefault: func() (azcore.TokenCredential, error) {
			return azidentity.NewDefaultAzureCredential(nil)
		},
		newBrowser: func() (azcore.TokenCredential, error) {
			return azidentity.NewInteractiveBrowserCredential(nil)
		},
	}
}

// Acquire returns a credential that has successfully produced a token for
// the provider's scope, along with the mechanism that produced it
// ("default" or "browser"). Both credential constructors are lazy, so each
// candidate is probed with a token request before it is accepted.
func (p *Provider) Acquire(ctx context.Context) (azcore.TokenCredential, string, error) {
	cred, err := p.newDefault()
	if err == nil {
		if err = p.probe(ctx, cred); err == nil {
			return cred, "default", nil
		}
	}
	p.logger.Warn("non-interactive credentials unavailable", log.Err(err))

	if !p.allowBrowser {
		return nil, "", fmt.Errorf("%w: browser sign-in disabled", domain.ErrAuthUnavailable)
	}

	cred, err = p.newBrowser()
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrAuthUnavailable, err)
	}
	if err = p.probe(ctx, cred); err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrAuthUnavailable, err)
	}
	return cred, "browser", nil
}

// probe forces the lazy credential to mint a token now, so a dead source is
// rejected before any receiver work starts.
func (p *Provider) probe(ctx context.Context, cred azcore.TokenCredential) error {
	_, err := cred.GetToken(ctx, policy.TokenRequestOptions{Scopes: []string{p.scope}})
	return err
}
