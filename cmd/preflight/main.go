// cmd/preflight/main.go
package main

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

func main() {
	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		os.Exit(1)
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	// The deployed image must ship the probe binary; at runtime its
	// absence surfaces as launch_failed, never as empty success.
	bin := strings.TrimSpace(os.Getenv("PING_BIN"))
	if bin == "" {
		bin = "ping"
	}
	path, err := exec.LookPath(bin)
	if err != nil {
		fail(fmt.Sprintf("probe binary %q not found on PATH — every probe would return launch_failed.", bin))
	}
	ok("probe binary: " + path)

	if addr := strings.TrimSpace(os.Getenv("ADDR")); addr == "" {
		warn("ADDR is empty; default in your app may be used.")
	} else {
		ok("ADDR=" + addr)
	}

	if dir := strings.TrimSpace(os.Getenv("LOG_DIR")); dir == "" {
		warn("LOG_DIR empty — logs default to ./logs.")
	} else {
		ok("LOG_DIR=" + dir)
	}

	if v := strings.TrimSpace(os.Getenv("PROBE_TIMEOUT_MS")); v == "" {
		warn("PROBE_TIMEOUT_MS empty — default 5000ms will be used.")
	} else if ms, err := strconv.Atoi(v); err != nil || ms <= 0 {
		fail("PROBE_TIMEOUT_MS must be a positive integer, got " + v)
	} else {
		ok("PROBE_TIMEOUT_MS=" + v)
	}

	ok("preflight passed")
}
