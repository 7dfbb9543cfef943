package config

import (
	"errors"
	"flag"
	"io"
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

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a backend listen address in format [host]:[port]
//	-backend backend address used by the panel (host:port or URL)
//	-d SQLite database file
//	-c/-config json file path with configs
//	-secret shared secret key
//	-request-timeout request timeout (e.g., "10s")
//	-poll-interval probe interval (e.g., "360ms")
//	-poll-timeout max wait for one sync job (e.g., "10m", negative disables)
//	-debounce settings debounce window (e.g., "1.5s")
//	-lock-policy "global" or "per-entity"
//	-session-dir launcher session marker directory
//	-job-timeout max duration of one backend git sync
//	-lock-dir directory for per-game git lock files
//	-log-file panel log file
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("git-save", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var backendAddress string
	var databaseDSN string
	var jsonConfigPath string
	var secretKey string
	var requestTimeout time.Duration
	var pollInterval time.Duration
	var pollTimeout time.Duration
	var debounceWindow time.Duration
	var lockPolicy string
	var sessionDir string
	var jobTimeout time.Duration
	var lockDir string
	var logFile string

	fs.Var(&serverAddress, "a", "Backend listen address host:port")
	fs.StringVar(&backendAddress, "backend", "", "Backend address used by the panel")
	fs.StringVar(&databaseDSN, "d", "", "SQLite database file")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&secretKey, "secret", "", "Shared secret key")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Sync probe interval (e.g., 360ms)")
	fs.DurationVar(&pollTimeout, "poll-timeout", 0, "Max wait for one sync job")
	fs.DurationVar(&debounceWindow, "debounce", 0, "Settings debounce window")
	fs.StringVar(&lockPolicy, "lock-policy", "", "Sync lock policy: global or per-entity")
	fs.StringVar(&sessionDir, "session-dir", "", "Launcher session marker directory")
	fs.DurationVar(&jobTimeout, "job-timeout", 0, "Max duration of one git sync")
	fs.StringVar(&lockDir, "lock-dir", "", "Directory for git lock files")
	fs.StringVar(&logFile, "log-file", "", "Panel log file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			SecretKey: secretKey,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    backendAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			PollInterval:   pollInterval,
			PollTimeout:    pollTimeout,
			DebounceWindow: debounceWindow,
			LockPolicy:     lockPolicy,
			SessionDir:     sessionDir,
			JobTimeout:     jobTimeout,
		},
		Git: Git{
			LockDir: lockDir,
		},
		Log: Log{
			File: logFile,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither part is set.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
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
