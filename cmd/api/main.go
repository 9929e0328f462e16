package main

import (
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/hamed0406/pingprobe/internal/config"
	"github.com/hamed0406/pingprobe/internal/httpapi"
	"github.com/hamed0406/pingprobe/internal/logging"
	"github.com/hamed0406/pingprobe/internal/probe"
)

func main() {
	cfg := config.FromEnv()
	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	var prober probe.Prober = probe.NewPinger(probe.DefaultConfig(cfg.PingBin, cfg.ProbeTimeout))
	if cfg.MaxConcurrentProbes > 0 {
		prober = probe.NewPool(prober, cfg.MaxConcurrentProbes)
	}

	api := httpapi.NewServer(logger, prober)

	logger.Info("api_listen",
		zap.String("addr", cfg.Addr),
		zap.String("ping_bin", cfg.PingBin),
		zap.Duration("probe_timeout", cfg.ProbeTimeout),
		zap.Int("max_concurrent_probes", cfg.MaxConcurrentProbes),
	)
	if err := http.ListenAndServe(cfg.Addr, api.Router()); err != nil {
		log.Fatal(err)
	}
}
