package funcapp

import (
	"fmt"
	"os"
)

// Config holds CLI configuration for funcvault.
type Config struct {
	SubscriptionID    string
	ResourceGroup     string
	DataResourceGroup string
	FunctionApp       string
	Vault             string

	List      bool
	NoBrowser bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{}
}

// Validate checks the configuration for errors. List mode only reads from
// the function app, so the vault settings are not required for it.
func (c *Config) Validate() error {
	if c.SubscriptionID == "" {
		return fmt.Errorf("subscription id is required (--subscription-id or FUNCVAULT_SUBSCRIPTION_ID)")
	}
	if c.ResourceGroup == "" {
		return fmt.Errorf("resource group is required (--resource-group or FUNCVAULT_RESOURCE_GROUP)")
	}
	if c.FunctionApp == "" {
		return fmt.Errorf("function app is required (--function-app or FUNCVAULT_FUNCTION_APP)")
	}
	if c.List {
		return nil
	}
	if c.DataResourceGroup == "" {
		return fmt.Errorf("data resource group is required (--data-resource-group or FUNCVAULT_DATA_RESOURCE_GROUP)")
	}
	if c.Vault == "" {
		return fmt.Errorf("vault is required (--vault or FUNCVAULT_VAULT)")
	}
	return nil
}

// ApplyEnvConfig applies configuration from FUNCVAULT_* environment
// variables. It respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) {
	setString := func(flag, value string, dst *string) {
		if value == "" || changed[flag] {
			return
		}
		*dst = value
	}

	setString("subscription-id", os.Getenv("FUNCVAULT_SUBSCRIPTION_ID"), &cfg.SubscriptionID)
	setString("resource-group", os.Getenv("FUNCVAULT_RESOURCE_GROUP"), &cfg.ResourceGroup)
	setString("data-resource-group", os.Getenv("FUNCVAULT_DATA_RESOURCE_GROUP"), &cfg.DataResourceGroup)
	setString("function-app", os.Getenv("FUNCVAULT_FUNCTION_APP"), &cfg.FunctionApp)
	setString("vault", os.Getenv("FUNCVAULT_VAULT"), &cfg.Vault)

	if v := os.Getenv("FUNCVAULT_NO_BROWSER"); v != "" && !changed["no-browser"] {
		cfg.NoBrowser = v == "true" || v == "1"
	}
}
