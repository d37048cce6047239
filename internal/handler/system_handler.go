package handler

import (
	"context"
	"errors"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/govjobs/govjobs-backend/internal/response"
	"github.com/govjobs/govjobs-backend/internal/sysinfo"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const dbProbeTimeout = 2 * time.Second

// SystemHandler serves liveness and a runtime snapshot for the admin panel.
type SystemHandler struct {
	pool      *pgxpool.Pool
	startTime time.Time
	log       zerolog.Logger
}

// NewSystemHandler creates a SystemHandler. pool may be nil, in which case
// the snapshot reports the database as down.
func NewSystemHandler(pool *pgxpool.Pool, log zerolog.Logger) *SystemHandler {
	return &SystemHandler{
		pool:      pool,
		startTime: time.Now(),
		log:       log.With().Str("component", "system_handler").Logger(),
	}
}

// Health godoc
// GET /health, GET /api/health
// Liveness only; never touches the database.
func (h *SystemHandler) Health(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"status":  "OK",
		"message": "Server is running",
	})
}

type hostSnapshot struct {
	Memory  *sysinfo.Memory `json:"memory,omitempty"`
	LoadAvg *[3]float64     `json:"load_avg,omitempty"`
	NumCPU  int             `json:"num_cpu"`
}

type processSnapshot struct {
	StartedAt     time.Time `json:"started_at"`
	UptimeSeconds int64     `json:"uptime_seconds"`
	RSSBytes      uint64    `json:"rss_bytes,omitempty"`
	GoVersion     string    `json:"go_version"`
	Goroutines    int       `json:"goroutines"`
	HeapAlloc     uint64    `json:"heap_alloc"`
	HeapSys       uint64    `json:"heap_sys"`
	NumGC         uint32    `json:"num_gc"`
}

type databaseSnapshot struct {
	Up            bool   `json:"up"`
	PingMillis    int64  `json:"ping_ms"`
	SchemaVersion *int64 `json:"schema_version,omitempty"`
	SchemaDirty   bool   `json:"schema_dirty,omitempty"`
	TotalConns    int32  `json:"total_conns"`
	IdleConns     int32  `json:"idle_conns"`
	AcquiredConns int32  `json:"acquired_conns"`
	MaxConns      int32  `json:"max_conns"`
	Error         string `json:"error,omitempty"`
}

type systemSnapshot struct {
	Timestamp time.Time        `json:"timestamp"`
	Host      hostSnapshot     `json:"host"`
	Process   processSnapshot  `json:"process"`
	Database  databaseSnapshot `json:"database"`
}

// SystemMetrics godoc
// GET /api/admin/system
// Returns one snapshot of host, process and connection pool figures.
func (h *SystemHandler) SystemMetrics(c *gin.Context) {
	response.Success(c, http.StatusOK, h.collect(c.Request.Context()))
}

func (h *SystemHandler) collect(ctx context.Context) systemSnapshot {
	now := time.Now()
	snap := systemSnapshot{
		Timestamp: now.UTC(),
		Host:      hostSnapshot{NumCPU: runtime.NumCPU()},
		Process: processSnapshot{
			StartedAt:     h.startTime.UTC(),
			UptimeSeconds: int64(now.Sub(h.startTime).Seconds()),
			GoVersion:     runtime.Version(),
			Goroutines:    runtime.NumGoroutine(),
		},
	}

	if mem, err := sysinfo.ReadMemory(); err == nil {
		snap.Host.Memory = &mem
	}
	if load, err := sysinfo.ReadLoadAvg(); err == nil {
		snap.Host.LoadAvg = &load
	}
	snap.Process.RSSBytes, _ = sysinfo.ReadProcessRSS()

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	snap.Process.HeapAlloc = ms.HeapAlloc
	snap.Process.HeapSys = ms.HeapSys
	snap.Process.NumGC = ms.NumGC

	snap.Database = h.probeDatabase(ctx)
	return snap
}

func (h *SystemHandler) probeDatabase(ctx context.Context) databaseSnapshot {
	if h.pool == nil {
		return databaseSnapshot{Error: "no database pool"}
	}

	stat := h.pool.Stat()
	d := databaseSnapshot{
		TotalConns:    stat.TotalConns(),
		IdleConns:     stat.IdleConns(),
		AcquiredConns: stat.AcquiredConns(),
		MaxConns:      stat.MaxConns(),
	}

	ctx, cancel := context.WithTimeout(ctx, dbProbeTimeout)
	defer cancel()

	start := time.Now()
	if err := h.pool.Ping(ctx); err != nil {
		h.log.Warn().Err(err).Msg("Database ping failed")
		d.Error = "ping failed"
		return d
	}
	d.Up = true
	d.PingMillis = time.Since(start).Milliseconds()

	// schema_migrations is maintained by golang-migrate.
	var version int64
	err := h.pool.QueryRow(ctx, `SELECT version, dirty FROM schema_migrations LIMIT 1`).Scan(&version, &d.SchemaDirty)
	switch {
	case err == nil:
		d.SchemaVersion = &version
	case errors.Is(err, pgx.ErrNoRows):
	default:
		h.log.Warn().Err(err).Msg("Failed to read schema version")
	}
	return d
}
