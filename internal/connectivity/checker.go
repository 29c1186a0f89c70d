// Package connectivity reports current network reachability and notifies
// subscribers about transitions. It is the client's substitute for a platform
// connectivity API: reachability is probed against the backend host itself.
package connectivity

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// Checker reports current connectivity on demand.
type Checker interface {
	IsConnected(ctx context.Context) bool
}

// Func adapts a plain function to a Checker.
type Func func(ctx context.Context) bool

func (f Func) IsConnected(ctx context.Context) bool { return f(ctx) }

// ProbeChecker decides connectivity by issuing a HEAD request against the
// backend base URL. Any HTTP response, including an error status, proves the
// network path is up; only transport-level failures count as offline.
type ProbeChecker struct {
	url    string
	http   *http.Client
	logger *slog.Logger
}

func NewProbeChecker(baseURL string, timeout time.Duration, logger *slog.Logger) *ProbeChecker {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &ProbeChecker{
		url:    baseURL,
		http:   &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// IsConnected probes the backend. When the probe itself cannot be built the
// result is unknown, and unknown is treated as online so a broken probe never
// blocks normal operation.
func (p *ProbeChecker) IsConnected(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.url, nil)
	if err != nil {
		p.logger.Warn("connectivity probe unavailable, assuming online", "error", err)
		return true
	}
	resp, err := p.http.Do(req)
	if err != nil {
		p.logger.Debug("connectivity probe failed", "error", err)
		return false
	}
	_ = resp.Body.Close()
	return true
}
