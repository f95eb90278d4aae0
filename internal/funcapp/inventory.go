package funcapp

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v2"
)

// FunctionLister enumerates a Function App's functions and resolves their
// invocation keys.
type FunctionLister interface {
	// ListFunctions returns the bare function names of the app.
	ListFunctions(ctx context.Context) ([]string, error)
	// DefaultKey returns the function's default host key.
	DefaultKey(ctx context.Context, function string) (string, error)
}

// ARMLister lists functions through the Azure Resource Manager web apps API.
type ARMLister struct {
	client        *armappservice.WebAppsClient
	resourceGroup string
	app           string
}

// NewARMLister creates a lister for one Function App.
func NewARMLister(subscriptionID, resourceGroup, app string, cred azcore.TokenCredential) (*ARMLister, error) {
	client, err := armappservice.NewWebAppsClient(subscriptionID, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("create web apps client: %w", err)
	}
	return &ARMLister{client: client, resourceGroup: resourceGroup, app: app}, nil
}

// ListFunctions pages through the app's functions. ARM reports names in the
// app/function form; only the function part is returned.
func (l *ARMLister) ListFunctions(ctx context.Context) ([]string, error) {
	var names []string
	pager := l.client.NewListFunctionsPager(l.resourceGroup, l.app, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list functions: %w", err)
		}
		for _, fn := range page.Value {
			if fn.Name == nil {
				continue
			}
			names = append(names, SplitFunctionName(*fn.Name))
		}
	}
	return names, nil
}

// DefaultKey fetches the function's keys and returns the default one.
func (l *ARMLister) DefaultKey(ctx context.Context, function string) (string, error) {
	keys, err := l.client.ListFunctionKeys(ctx, l.resourceGroup, l.app, function, nil)
	if err != nil {
		return "", fmt.Errorf("list keys for %s: %w", function, err)
	}
	key, ok := keys.Properties["default"]
	if !ok || key == nil || *key == "" {
		return "", fmt.Errorf("function %s has no default key", function)
	}
	return *key, nil
}

// SplitFunctionName returns the bare function name from the app/function
// form ARM reports. A name without a slash is returned as is.
func SplitFunctionName(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[i+1:]
	}
	return name
}

// FunctionURL composes the invocation URL for a function and its key.
func FunctionURL(app, function, key string) string {
	return fmt.Sprintf("https://%s.azurewebsites.net/api/%s?code=%s", app, function, key)
}

// SecretNameFor returns the vault secret name holding a function's URL.
func SecretNameFor(function string) string {
	return "function-url-" + function
}

// VaultURL returns the endpoint URL for a vault name.
func VaultURL(vault string) string {
	return fmt.Sprintf("https://%s.vault.azure.net", vault)
}
