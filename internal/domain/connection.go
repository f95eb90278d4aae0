package domain

import (
	"fmt"
	"strings"
)

// fqdnSuffix is appended to bare namespace names that carry no domain part.
const fqdnSuffix = ".servicebus.windows.net"

// AuthMode selects how the bus client authenticates to the namespace.
type AuthMode int

const (
	// AuthSAS authenticates with a shared-access-signature connection string.
	AuthSAS AuthMode = iota

	// AuthIdentity authenticates with an Entra ID token credential against
	// the namespace FQDN.
	AuthIdentity
)

// String returns a human-readable representation of the auth mode.
func (m AuthMode) String() string {
	switch m {
	case AuthSAS:
		return "SAS"
	case AuthIdentity:
		return "EntraID"
	default:
		return "Unknown"
	}
}

// Connection describes how to reach a Service Bus namespace.
// Exactly one of ConnectionString and FQDN is populated, selected by Mode.
type Connection struct {
	Mode             AuthMode
	ConnectionString string
	FQDN             string
}

// ResolveConnection picks the auth mode from the supplied settings.
// A non-empty connection string wins unconditionally over namespace identity
// settings; this keeps existing SAS deployments working when both are set.
// The connection string is validated for an Endpoint= segment before any
// client is built from it.
func ResolveConnection(connStr, namespace string) (Connection, error) {
	if strings.TrimSpace(connStr) != "" {
		if _, err := EndpointNamespace(connStr); err != nil {
			return Connection{}, err
		}
		return Connection{Mode: AuthSAS, ConnectionString: connStr}, nil
	}

	fqdn, err := ToFQDN(namespace)
	if err != nil {
		return Connection{}, err
	}
	return Connection{Mode: AuthIdentity, FQDN: fqdn}, nil
}

// EndpointNamespace extracts the namespace name from the Endpoint= segment of
// a connection string. The key match is case-insensitive; the sb:// scheme
// and trailing slashes are stripped, and the first dot-separated label is the
// namespace name. Returns ErrMalformedConnString when no Endpoint= segment is
// present.
func EndpointNamespace(connStr string) (string, error) {
	for _, part := range strings.Split(connStr, ";") {
		part = strings.TrimSpace(part)
		if len(part) < len("endpoint=") || !strings.EqualFold(part[:len("endpoint=")], "endpoint=") {
			continue
		}
		endpoint := strings.TrimSpace(part[len("endpoint="):])
		endpoint = strings.TrimPrefix(endpoint, "sb://")
		endpoint = strings.TrimRight(endpoint, "/")
		if i := strings.IndexByte(endpoint, '.'); i >= 0 {
			endpoint = endpoint[:i]
		}
		return endpoint, nil
	}
	return "", fmt.Errorf("%w: %q", ErrMalformedConnString, redactConnString(connStr))
}

// ToFQDN normalizes a namespace identifier to a fully-qualified domain name.
// A bare name (no dot) gets the standard service suffix appended; an explicit
// FQDN passes through unchanged. An empty identifier is ErrMissingNamespace.
func ToFQDN(namespace string) (string, error) {
	ns := strings.TrimSpace(namespace)
	if ns == "" {
		return "", ErrMissingNamespace
	}
	if strings.Contains(ns, ".") {
		return ns, nil
	}
	return ns + fqdnSuffix, nil
}

// Label returns the short namespace name used in operator-facing log output.
// It is derived from whichever setting the connection was resolved from and
// must not be used for control flow.
func (c Connection) Label() string {
	switch c.Mode {
	case AuthSAS:
		ns, err := EndpointNamespace(c.ConnectionString)
		if err != nil {
			return ""
		}
		return ns
	case AuthIdentity:
		if i := strings.IndexByte(c.FQDN, '.'); i >= 0 {
			return c.FQDN[:i]
		}
		return c.FQDN
	default:
		return ""
	}
}

// redactConnString keeps error messages free of key material. Only the
// segment keys survive; values are dropped.
func redactConnString(connStr string) string {
	parts := strings.Split(connStr, ";")
	keys := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if i := strings.IndexByte(part, '='); i >= 0 {
			part = part[:i]
		}
		keys = append(keys, part)
	}
	return strings.Join(keys, ";")
}
