package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the HTTP endpoint address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level CLI client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
}

// GetClientConfig builds and validates a client-specific config view. args
// are the process arguments without the program name; the returned slice
// holds what is left after the global client flags (the subcommand).
//
// Source priority is the same as for [GetStructuredConfig]: env, flags,
// JSON, defaults.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	flagCfg, rest, err := parseClientFlags(args)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := newConfigBuilder().
		withEnv().
		withConfig(flagCfg).
		withJSON().
		withDefaults().
		merge()
	if err != nil {
		return nil, nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}

	if err := clientCfg.validate(); err != nil {
		return nil, nil, err
	}
	return clientCfg, rest, nil
}
