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
//	-d document database connection string
//	-db-name document database name
//	-redis redis address in format [host]:[port]
//	-c/-config json file path with configs
//	-session-secret session cookie secret
//	-session-ttl session time to live (e.g., "24h")
//	-rate-window rate limit window (e.g., "15m")
//	-rate-max max requests per client per window
//	-max-body maximum request body size in bytes
//	-cors-origins comma-separated allowed CORS origins
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-image-host-url external image host base URL
//	-image-host-key external image host API key
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var dbConnString string
	var dbName string
	var redisAddr string
	var jsonConfigPath string
	var sessionSecret string
	var sessionTTL time.Duration
	var rateWindow time.Duration
	var rateMax int64
	var maxBodyBytes int64
	var corsOrigins string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var imageHostURL string
	var imageHostKey string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&dbConnString, "d", "", "Document database connection string")
	flag.StringVar(&dbName, "db-name", "", "Document database name")
	flag.StringVar(&redisAddr, "redis", "", "Redis address host:port")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&sessionSecret, "session-secret", "", "Session cookie secret")
	flag.DurationVar(&sessionTTL, "session-ttl", 0, "Session TTL (e.g., 24h)")
	flag.DurationVar(&rateWindow, "rate-window", 0, "Rate limit window (e.g., 15m)")
	flag.Int64Var(&rateMax, "rate-max", 0, "Max requests per client per window")
	flag.Int64Var(&maxBodyBytes, "max-body", 0, "Max request body size in bytes")
	flag.StringVar(&corsOrigins, "cors-origins", "", "Comma-separated allowed CORS origins")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&imageHostURL, "image-host-url", "", "External image host base URL")
	flag.StringVar(&imageHostKey, "image-host-key", "", "External image host API key")

	flag.Parse()

	var origins []string
	if corsOrigins != "" {
		for _, origin := range strings.Split(corsOrigins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				ConnString: dbConnString,
				Database:   dbName,
			},
			Redis: Redis{
				Addr: redisAddr,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			MaxBodyBytes:   maxBodyBytes,
			CORSOrigins:    origins,
		},
		Session: Session{
			Secret: sessionSecret,
			TTL:    sessionTTL,
		},
		RateLimit: RateLimit{
			Window: rateWindow,
			Max:    rateMax,
		},
		ImageHost: ImageHost{
			BaseURL: imageHostURL,
			APIKey:  imageHostKey,
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

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("invalid host")
		}
	}

	a.Host = host
	a.Port = port

	return nil
}
