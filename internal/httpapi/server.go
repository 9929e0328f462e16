package httpapi

import (
	_ "embed"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/hamed0406/pingprobe/internal/domain"
	apimw "github.com/hamed0406/pingprobe/internal/httpapi/middleware"
	"github.com/hamed0406/pingprobe/internal/probe"
)

//go:embed index.html
var indexPage []byte

type Server struct {
	Logger *zap.Logger
	Prober probe.Prober
}

func NewServer(l *zap.Logger, p probe.Prober) *Server {
	return &Server{Logger: l, Prober: p}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)
	r.Use(apimw.RequestLog(s.Logger))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/", s.handleIndex)
	r.Post("/ping", s.handlePing)

	return r
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexPage)
}

// handlePing validates the form-supplied host and runs one probe. A
// rejected candidate never reaches the prober; no process is spawned
// for malformed input.
func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form payload", http.StatusBadRequest)
		return
	}

	host, err := domain.ParseHost(r.PostFormValue("host"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	out := s.Prober.Probe(r.Context(), host)

	s.Logger.Info("probe",
		zap.String("host", host.String()),
		zap.Stringer("outcome", out.Status),
		zap.Int("exit_code", out.ExitCode),
		zap.Float64("latency_ms", out.LatencyMS),
	)

	w.Header().Set("X-Probe-Outcome", out.Status.String())
	switch out.Status {
	case probe.StatusSuccess, probe.StatusUnreachable:
		// Ran-but-unreachable still returns the captured text; the
		// header tells the two apart.
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(out.Output))
	case probe.StatusTimedOut:
		http.Error(w, fmt.Sprintf("probe timed out after %dms", out.BoundMS), http.StatusGatewayTimeout)
	default:
		s.Logger.Error("probe_launch_failed", zap.String("reason", out.Reason))
		http.Error(w, "probe could not be started", http.StatusInternalServerError)
	}
}
