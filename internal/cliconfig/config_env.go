package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables.
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("connection-string", os.Getenv("SERVICE_BUS_CONNECTION_STR"), &cfg.ConnectionString)
	s.setString("topic", os.Getenv("SERVICE_BUS_TOPIC"), &cfg.Topic)
	s.setString("subscription", os.Getenv("SERVICE_BUS_SUBSCRIPTION"), &cfg.Subscription)

	namespace := os.Getenv("SERVICE_BUS_NAMESPACE_FQDN")
	if namespace == "" {
		namespace = os.Getenv("SERVICE_BUS_NAMESPACE")
	}
	s.setString("namespace", namespace, &cfg.Namespace)

	if err := s.setIntFromString("batch", os.Getenv("DLQ_BATCH"), &cfg.BatchSize); err != nil {
		return err
	}
	if err := s.setWaitFromString("wait", os.Getenv("DLQ_WAIT"), &cfg.MaxWait); err != nil {
		return err
	}

	s.setBoolFromString("no-browser", os.Getenv("SBDRAIN_NO_BROWSER"), &cfg.NoBrowser)

	return nil
}
