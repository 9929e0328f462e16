package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Addr                string        // API bind address, e.g., "127.0.0.1:8080" (local) or ":8080" (Docker)
	LogDir              string        // logs directory
	PingBin             string        // probe binary name or path
	ProbeTimeout        time.Duration // hard bound on one probe process
	MaxConcurrentProbes int           // 0 disables the launch cap
}

func FromEnv() Config {
	// Bind address (local-friendly default)
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = "127.0.0.1:8080"
	}

	// Logs
	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	// Probe binary; the deployment image must ship it
	bin := os.Getenv("PING_BIN")
	if bin == "" {
		bin = "ping"
	}

	// Probe timeout; always bounded
	timeout := 5 * time.Second
	if v := os.Getenv("PROBE_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			timeout = time.Duration(ms) * time.Millisecond
		}
	}

	maxProbes := 0
	if v := os.Getenv("MAX_CONCURRENT_PROBES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			maxProbes = n
		}
	}

	return Config{
		Addr:                addr,
		LogDir:              logDir,
		PingBin:             bin,
		ProbeTimeout:        timeout,
		MaxConcurrentProbes: maxProbes,
	}
}
