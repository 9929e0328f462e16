package probe

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
	"strconv"
	"time"

	"github.com/hamed0406/pingprobe/internal/domain"
)

// packetCount is fixed: the facility is a single-packet diagnostic, not a
// reliability check.
const packetCount = 1

// Status tags the terminal result of one probe attempt.
type Status int

const (
	StatusSuccess Status = iota
	StatusUnreachable
	StatusTimedOut
	StatusLaunchFailed
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusUnreachable:
		return "unreachable"
	case StatusTimedOut:
		return "timed_out"
	case StatusLaunchFailed:
		return "launch_failed"
	}
	return "unknown"
}

// Outcome is the result of a single probe attempt. One attempt per call, no
// retries; an unreachable target is a represented outcome, not an error.
type Outcome struct {
	Status    Status
	Output    string  // captured stdout (success and unreachable)
	ExitCode  int     // probe exit code when the process ran to completion
	LatencyMS float64 // wall time of a completed probe
	BoundMS   int64   // configured bound, set on timeout
	Reason    string  // underlying cause when the process never started
}

// Config holds the process-wide probe settings. It is resolved once at
// startup and read-only afterwards; in particular the count-flag spelling
// is fixed per process, never re-derived per request, and never taken from
// caller data.
type Config struct {
	Bin       string        // probe binary name or path, environment-resolved
	CountFlag string        // "-c" on POSIX ping, "-n" on Windows ping
	Timeout   time.Duration // hard wall-clock bound on the child process
}

// DefaultConfig selects the count-flag spelling for the running platform
// and applies the given binary and timeout. The executor never runs
// unbounded: a non-positive timeout falls back to 5s.
func DefaultConfig(bin string, timeout time.Duration) Config {
	flag := "-c"
	if runtime.GOOS == "windows" {
		flag = "-n"
	}
	if bin == "" {
		bin = "ping"
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return Config{Bin: bin, CountFlag: flag, Timeout: timeout}
}

// Prober runs one reachability probe against a validated host.
type Prober interface {
	Probe(ctx context.Context, host domain.Host) Outcome
}

// Pinger invokes the external probe binary. The argument vector is built
// from discrete tokens and handed to the OS directly, never through a
// shell; the host is the only caller-derived token and it has passed the
// domain allow-list before it can appear here.
type Pinger struct {
	cfg Config
}

func NewPinger(cfg Config) *Pinger {
	return &Pinger{cfg: cfg}
}

func (p *Pinger) Probe(ctx context.Context, host domain.Host) Outcome {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, p.cfg.Bin, p.cfg.CountFlag, strconv.Itoa(packetCount), host.String())
	// If a grandchild inherits the stdout pipe past the kill, give up on
	// the pipe after a second instead of waiting for it.
	cmd.WaitDelay = time.Second

	start := time.Now()
	out, err := cmd.Output()
	elapsed := time.Since(start)

	if ctx.Err() == context.DeadlineExceeded {
		// CommandContext killed the child and Output reaped it; nothing
		// is left running or unwaited on this path.
		return Outcome{Status: StatusTimedOut, BoundMS: p.cfg.Timeout.Milliseconds()}
	}
	if err == nil {
		return Outcome{Status: StatusSuccess, Output: string(out), LatencyMS: ms(elapsed)}
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return Outcome{
			Status:    StatusUnreachable,
			Output:    string(out),
			ExitCode:  exitErr.ExitCode(),
			LatencyMS: ms(elapsed),
		}
	}
	// The child never ran: missing binary, permissions, fork failure.
	// That is a deployment problem, kept apart from a negative probe.
	return Outcome{Status: StatusLaunchFailed, Reason: err.Error()}
}

func ms(d time.Duration) float64 { return d.Seconds() * 1000 }
