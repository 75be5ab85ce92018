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

// NetAddress is a flag.Value accepting "host:port".
type NetAddress struct {
	Host string
	Port int
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("bluedog", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var bridgeAddress NetAddress
	var dataDir, logFile, logLevel string
	var serviceURL string
	var requestTimeout, shutdownTimeout time.Duration
	var rateLimit float64
	var rateBurst int
	var timelineLimit, searchLimit, authorLimit int
	var disableMetrics bool
	var configPath string

	fs.Var(&bridgeAddress, "a", "Bridge listen address host:port")
	fs.StringVar(&dataDir, "data-dir", "", "Session storage directory")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&serviceURL, "service", "", "XRPC service URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Outbound request timeout (e.g., 15s)")
	fs.Float64Var(&rateLimit, "rate-limit", 0, "Outbound requests per second")
	fs.IntVar(&rateBurst, "rate-burst", 0, "Outbound request burst")
	fs.IntVar(&timelineLimit, "timeline-limit", 0, "Default timeline page size")
	fs.IntVar(&searchLimit, "search-limit", 0, "Default search page size")
	fs.IntVar(&authorLimit, "author-limit", 0, "Default author feed page size")
	fs.BoolVar(&disableMetrics, "disable-metrics", false, "Do not expose /metrics")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Bridge graceful shutdown timeout")
	fs.StringVar(&configPath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&configPath, "config", "", "JSON or YAML config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			DataDir:  dataDir,
			LogFile:  logFile,
			LogLevel: logLevel,
		},
		Adapter: Adapter{
			ServiceURL:     serviceURL,
			RequestTimeout: requestTimeout,
			RateLimit:      rateLimit,
			RateBurst:      rateBurst,
		},
		Feed: Feed{
			TimelineLimit: timelineLimit,
			SearchLimit:   searchLimit,
			AuthorLimit:   authorLimit,
		},
		Bridge: Bridge{
			HTTPAddress:     bridgeAddress.String(),
			DisableMetrics:  disableMetrics,
			ShutdownTimeout: shutdownTimeout,
		},
		ConfigFilePath: configPath,
	}, nil
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

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

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
