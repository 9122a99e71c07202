package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the server flags found in args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-driver database driver (pgx or sqlite3)
//	-c/-config json file path with configs
//	-ca-key CA private key path
//	-ca-issuer issuer label written into certificates
//	-pbkdf2-iterations note key work factor
//	-rsa-key-size RSA modulus size
//	-challenge-ttl challenge lifetime (e.g., "5m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-admin-user / -admin-password admin API credentials
//	-token-sign-key admin token signing key
//	-token-issuer admin token issuer name
//	-token-duration admin token duration (e.g., "1h", "30m")
//	-sweep-interval challenge sweep period
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("securnote-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	cfg := new(StructuredConfig)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.DB.Driver, "driver", "", "Database driver (pgx or sqlite3)")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.Security.CAKeyPath, "ca-key", "", "CA private key path")
	fs.StringVar(&cfg.Security.CAIssuer, "ca-issuer", "", "Certificate issuer label")
	fs.IntVar(&cfg.Security.PBKDF2Iterations, "pbkdf2-iterations", 0, "PBKDF2 iterations for note keys")
	fs.IntVar(&cfg.Security.RSAKeySize, "rsa-key-size", 0, "RSA key size in bits")
	fs.DurationVar(&cfg.Security.ChallengeTTL, "challenge-ttl", 0, "Challenge lifetime (e.g., 5m)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.Admin.Username, "admin-user", "", "Admin API username")
	fs.StringVar(&cfg.Admin.Password, "admin-password", "", "Admin API password")
	fs.StringVar(&cfg.Admin.TokenSignKey, "token-sign-key", "", "Admin token signing key")
	fs.StringVar(&cfg.Admin.TokenIssuer, "token-issuer", "", "Admin token issuer")
	fs.DurationVar(&cfg.Admin.TokenDuration, "token-duration", 0, "Admin token duration (e.g., 1h, 30m)")
	fs.DurationVar(&cfg.Workers.ChallengeSweepInterval, "sweep-interval", 0, "Challenge sweep interval")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "challenge-ttl" {
			cfg.Security.setChallengeTTL(cfg.Security.ChallengeTTL)
		}
	})

	cfg.Server.HTTPAddress = serverAddress.String()
	return cfg, nil
}

// parseClientFlags parses the global CLI client flags and returns the
// remaining arguments (the subcommand and its operands).
//
// Flags:
//
//	-a server address in format [host]:[port] or a full URL
//	-c/-config json file path with configs
//	-timeout request timeout (e.g., "15s")
func parseClientFlags(args []string) (*StructuredConfig, []string, error) {
	fs := flag.NewFlagSet("securnote", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := new(StructuredConfig)
	fs.StringVar(&cfg.Adapter.HTTPAddress, "a", "", "Server address")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "timeout", 0, "Request timeout (e.g., 15s)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, fs.Args(), nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

var _ flag.Value = (*NetAddress)(nil)
