package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-password-hash-key password hash key
//	-session-sign-key session cookie signing key
//	-session-issuer session issuer name
//	-session-duration session lifetime (e.g., "168h")
//	-allowed-email-domain signup email domain suffix (e.g., "@zod.com")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-base-url client base URL of the feed server
//	-cache-dsn client feed cache sqlite path
//	-refresh-interval client feed refresh interval (e.g., "1m")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var passwordHashKey string
	var sessionSignKey string
	var sessionIssuer string
	var sessionDuration time.Duration
	var allowedEmailDomain string
	var requestTimeout time.Duration
	var baseURL string
	var cacheDSN string
	var refreshInterval time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&passwordHashKey, "password-hash-key", "", "Password hash key")
	flag.StringVar(&sessionSignKey, "session-sign-key", "", "Session cookie signing key")
	flag.StringVar(&sessionIssuer, "session-issuer", "", "Session issuer")
	flag.DurationVar(&sessionDuration, "session-duration", 0, "Session lifetime (e.g., 168h)")
	flag.StringVar(&allowedEmailDomain, "allowed-email-domain", "", "Signup email domain suffix")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&baseURL, "base-url", "", "Feed server base URL (client)")
	flag.StringVar(&cacheDSN, "cache-dsn", "", "Feed cache sqlite path (client)")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Feed refresh interval (client)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			PasswordHashKey:    passwordHashKey,
			SessionSignKey:     sessionSignKey,
			SessionIssuer:      sessionIssuer,
			SessionDuration:    sessionDuration,
			AllowedEmailDomain: allowedEmailDomain,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Client: Client{
			BaseURL:         baseURL,
			RequestTimeout:  requestTimeout,
			CacheDSN:        cacheDSN,
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
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
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
