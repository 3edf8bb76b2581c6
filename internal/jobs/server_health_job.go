package jobs

import (
	"context"
	"fmt"
	"founderdeck/internal/metrics"
	"founderdeck/internal/models"
	"founderdeck/internal/storage"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	probeTimeout     = 10 * time.Second
	maxParallelProbe = 5
)

// ServerHealthJob probes every tracked server on a fixed interval and writes
// the observed status back to storage. Probes run across all owners; the
// status columns are the only ones the job touches.
type ServerHealthJob struct {
	storage    storage.Provider
	httpClient *http.Client
	interval   time.Duration
	logger     *slog.Logger
}

func NewServerHealthJob(store storage.Provider, interval time.Duration, logger *slog.Logger) *ServerHealthJob {
	return &ServerHealthJob{
		storage:    store,
		httpClient: &http.Client{Timeout: probeTimeout},
		interval:   interval,
		logger:     logger,
	}
}

func (j *ServerHealthJob) Name() string {
	return "server_health"
}

func (j *ServerHealthJob) Interval() time.Duration {
	return j.interval
}

func (j *ServerHealthJob) Run(ctx context.Context) error {
	if j.interval <= 0 {
		return fmt.Errorf("non-positive ticker interval: %s", j.interval)
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.logger.Debug("Starting background server health checks", "interval", j.interval)

	if err := j.checkAll(ctx); err != nil {
		j.logger.Error("initial server health check failed", "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			j.logger.Debug("Background server health checks canceled")
			return ctx.Err()
		case <-ticker.C:
			if err := j.checkAll(ctx); err != nil {
				j.logger.Error("server health check failed", "error", err)
			}
		}
	}
}

func (j *ServerHealthJob) checkAll(ctx context.Context) error {
	servers, err := j.storage.ListAllServers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list servers: %w", err)
	}

	// run_id correlates the per-server log lines of one probe cycle
	logger := j.logger.With("run_id", uuid.NewString())
	logger.Debug("probing tracked servers", "count", len(servers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelProbe)

	for _, server := range servers {
		g.Go(func() error {
			j.checkOne(gctx, logger, server)
			return nil
		})
	}

	return g.Wait()
}

func (j *ServerHealthJob) checkOne(ctx context.Context, logger *slog.Logger, server *models.TrackedServer) {
	status, latency := j.probe(ctx, server.CheckURL)

	metrics.ServerProbesTotal.WithLabelValues(string(status)).Inc()
	metrics.ServerProbeDuration.WithLabelValues(string(status)).Observe(float64(latency) / 1000)

	if err := j.storage.UpdateServerStatus(ctx, server.ID, status, latency, time.Now()); err != nil {
		logger.Error("failed to record server status", "server", server.Name, "error", err)
	}
}

// probe issues a GET against the check URL. Any 2xx or 3xx answer within the
// timeout counts as up; everything else is down.
func (j *ServerHealthJob) probe(ctx context.Context, checkURL string) (models.ServerStatus, int64) {
	if checkURL == "" {
		return models.ServerStatusUnknown, 0
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, checkURL, nil)
	if err != nil {
		return models.ServerStatusDown, 0
	}

	start := time.Now()
	resp, err := j.httpClient.Do(req)
	latency := time.Since(start).Milliseconds()

	if err != nil {
		return models.ServerStatusDown, latency
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return models.ServerStatusDown, latency
	}

	return models.ServerStatusUp, latency
}
