// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
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

// ParseFlags parses configuration flags from args (usually os.Args[1:]).
// Positional arguments left after the flags are returned in
// [StructuredConfig.Args].
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-jwt-key token signing secret
//	-jwt-issuer token issuer
//	-jwt-audience token audience
//	-jwt-expires-minutes token lifetime in minutes
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-auth-rate-limit auth requests per minute per client IP
//	-trusted-proxy take the client IP from proxy headers
//	-server server address used by the client
//	-local-db client SQLite file
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("blog-auth", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var jwtKey string
	var jwtIssuer string
	var jwtAudience string
	var jwtExpiresMinutes int
	var requestTimeout time.Duration
	var authRateLimit int
	var trustedProxy bool
	var adapterAddress string
	var localDB string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&jwtKey, "jwt-key", "", "Token signing key")
	fs.StringVar(&jwtIssuer, "jwt-issuer", "", "Token issuer")
	fs.StringVar(&jwtAudience, "jwt-audience", "", "Token audience")
	fs.IntVar(&jwtExpiresMinutes, "jwt-expires-minutes", 0, "Token lifetime in minutes")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&authRateLimit, "auth-rate-limit", 0, "Auth requests per minute per client IP")
	fs.BoolVar(&trustedProxy, "trusted-proxy", false, "Take the client IP from proxy headers")
	fs.StringVar(&adapterAddress, "server", "", "Server address used by the client")
	fs.StringVar(&localDB, "local-db", "", "Client local SQLite file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		JWT: JWT{
			Key:            jwtKey,
			Issuer:         jwtIssuer,
			Audience:       jwtAudience,
			ExpiresMinutes: jwtExpiresMinutes,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			AuthRateLimit:  authRateLimit,
			TrustedProxy:   trustedProxy,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Client: Client{
			DBDSN: localDB,
		},
		JSONFilePath: jsonConfigPath,
		Args:         fs.Args(),
	}, nil
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

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
