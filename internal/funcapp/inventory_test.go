package funcapp

import "testing"

func TestSplitFunctionName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"app slash function", "orders-app/IngestOrder", "IngestOrder"},
		{"bare function", "IngestOrder", "IngestOrder"},
		{"nested path keeps last segment", "sub/orders-app/IngestOrder", "IngestOrder"},
		{"trailing slash", "orders-app/", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitFunctionName(tt.in); got != tt.want {
				t.Errorf("SplitFunctionName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFunctionURL(t *testing.T) {
	got := FunctionURL("orders-app", "IngestOrder", "k3y")
	want := "https://orders-app.azurewebsites.net/api/IngestOrder?code=k3y"
	if got != want {
		t.Errorf("FunctionURL() = %q, want %q", got, want)
	}
}

func TestSecretNameFor(t *testing.T) {
	if got := SecretNameFor("IngestOrder"); got != "function-url-IngestOrder" {
		t.Errorf("SecretNameFor() = %q, want function-url-IngestOrder", got)
	}
}

func TestVaultURL(t *testing.T) {
	if got := VaultURL("orders-vault"); got != "https://orders-vault.vault.azure.net" {
		t.Errorf("VaultURL() = %q, want https://orders-vault.vault.azure.net", got)
	}
}
