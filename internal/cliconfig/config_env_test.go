package cliconfig

import (
	"os"
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"SERVICE_BUS_CONNECTION_STR": "Endpoint=sb://env.servicebus.windows.net/;SharedAccessKey=x",
				"SERVICE_BUS_TOPIC":          "env-topic",
				"SERVICE_BUS_SUBSCRIPTION":   "env-sub",
				"SERVICE_BUS_NAMESPACE":      "envbus",
				"DLQ_BATCH":                  "250",
				"DLQ_WAIT":                   "30",
				"SBDRAIN_NO_BROWSER":         "true",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				ConnectionString: "Endpoint=sb://env.servicebus.windows.net/;SharedAccessKey=x",
				Topic:            "env-topic",
				Subscription:     "env-sub",
				Namespace:        "envbus",
				BatchSize:        250,
				MaxWait:          30 * time.Second,
				NoBrowser:        true,
			},
			wantErr: false,
		},
		{
			name: "fqdn namespace wins over bare name",
			envVars: map[string]string{
				"SERVICE_BUS_NAMESPACE_FQDN": "envbus.servicebus.windows.net",
				"SERVICE_BUS_NAMESPACE":      "ignored",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				Namespace: "envbus.servicebus.windows.net",
			},
			wantErr: false,
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"SERVICE_BUS_TOPIC":        "env-topic",
				"SERVICE_BUS_SUBSCRIPTION": "env-sub",
			},
			changed: map[string]bool{"topic": true},
			initial: Config{
				Topic: "flag-topic",
			},
			expected: Config{
				Topic:        "flag-topic",
				Subscription: "env-sub",
			},
			wantErr: false,
		},
		{
			name: "wait accepts go duration",
			envVars: map[string]string{
				"DLQ_WAIT": "2m30s",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				MaxWait: 150 * time.Second,
			},
			wantErr: false,
		},
		{
			name: "negative wait seconds ignored",
			envVars: map[string]string{
				"DLQ_WAIT": "-5",
			},
			changed: map[string]bool{},
			initial: Config{MaxWait: 5 * time.Second},
			expected: Config{
				MaxWait: 5 * time.Second,
			},
			wantErr: false,
		},
		{
			name: "returns error for invalid wait",
			envVars: map[string]string{
				"DLQ_WAIT": "soon",
			},
			changed:  map[string]bool{},
			initial:  Config{},
			expected: Config{},
			wantErr:  true,
		},
		{
			name: "returns error for invalid batch",
			envVars: map[string]string{
				"DLQ_BATCH": "ten",
			},
			changed:  map[string]bool{},
			initial:  Config{},
			expected: Config{},
			wantErr:  true,
		},
		{
			name: "handles bool '1' as true",
			envVars: map[string]string{
				"SBDRAIN_NO_BROWSER": "1",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				NoBrowser: true,
			},
			wantErr: false,
		},
		{
			name: "handles bool 'false' as false",
			envVars: map[string]string{
				"SBDRAIN_NO_BROWSER": "false",
			},
			changed: map[string]bool{},
			initial: Config{NoBrowser: true},
			expected: Config{
				NoBrowser: false,
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Set environment variables
			for k, v := range tt.envVars {
				os.Setenv(k, v)
			}
			// Clean up after test
			defer func() {
				for k := range tt.envVars {
					os.Unsetenv(k)
				}
			}()

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)

			if tt.wantErr && err == nil {
				t.Error("ApplyEnvConfig() expected error but got nil")
				return
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ApplyEnvConfig() unexpected error: %v", err)
				return
			}

			if !tt.wantErr {
				if cfg.ConnectionString != tt.expected.ConnectionString {
					t.Errorf("ConnectionString = %v, want %v", cfg.ConnectionString, tt.expected.ConnectionString)
				}
				if cfg.Topic != tt.expected.Topic {
					t.Errorf("Topic = %v, want %v", cfg.Topic, tt.expected.Topic)
				}
				if cfg.Subscription != tt.expected.Subscription {
					t.Errorf("Subscription = %v, want %v", cfg.Subscription, tt.expected.Subscription)
				}
				if cfg.Namespace != tt.expected.Namespace {
					t.Errorf("Namespace = %v, want %v", cfg.Namespace, tt.expected.Namespace)
				}
				if cfg.BatchSize != tt.expected.BatchSize {
					t.Errorf("BatchSize = %v, want %v", cfg.BatchSize, tt.expected.BatchSize)
				}
				if cfg.MaxWait != tt.expected.MaxWait {
					t.Errorf("MaxWait = %v, want %v", cfg.MaxWait, tt.expected.MaxWait)
				}
				if cfg.NoBrowser != tt.expected.NoBrowser {
					t.Errorf("NoBrowser = %v, want %v", cfg.NoBrowser, tt.expected.NoBrowser)
				}
			}
		})
	}
}

// Integration test: precedence order (CLI > Env > File)
func TestConfigPrecedence(t *testing.T) {
	// Setup file config
	fileConf := FileConfig{
		Topic:        "file-topic",
		Subscription: "file-sub",
		BatchSize:    111,
	}

	// Setup env vars
	os.Setenv("SERVICE_BUS_TOPIC", "env-topic")
	os.Setenv("DLQ_BATCH", "222")
	defer func() {
		os.Unsetenv("SERVICE_BUS_TOPIC")
		os.Unsetenv("DLQ_BATCH")
	}()

	// Simulate CLI flags
	changed := map[string]bool{
		"topic": true, // CLI flag was set for the topic
	}

	cfg := Config{
		Topic: "cli-topic", // This should remain (CLI wins)
	}

	// Apply file config
	if err := ApplyFileConfig(&cfg, fileConf, changed); err != nil {
		t.Fatalf("ApplyFileConfig failed: %v", err)
	}

	// Apply env config
	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		t.Fatalf("ApplyEnvConfig failed: %v", err)
	}

	// Verify precedence: CLI > Env > File
	if cfg.Topic != "cli-topic" {
		t.Errorf("Topic = %v, want cli-topic (CLI should win)", cfg.Topic)
	}
	if cfg.BatchSize != 222 {
		t.Errorf("BatchSize = %v, want 222 (env should override file)", cfg.BatchSize)
	}
	if cfg.Subscription != "file-sub" {
		t.Errorf("Subscription = %v, want file-sub (file should set)", cfg.Subscription)
	}
}
