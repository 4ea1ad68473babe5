package db

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

const healthPingTimeout = 5 * time.Second

// PoolStats is the pool pressure snapshot reported by /health/db.
// EmptyAcquireCount grows when requests had to wait for a free connection,
// which is the first sign the pool is undersized for the load.
type PoolStats struct {
	TotalConns        int32 `json:"total_conns"`
	IdleConns         int32 `json:"idle_conns"`
	AcquiredConns     int32 `json:"acquired_conns"`
	MaxConns          int32 `json:"max_conns"`
	EmptyAcquireCount int64 `json:"empty_acquire_count"`
}

func poolStats(pool *pgxpool.Pool) PoolStats {
	stat := pool.Stat()
	return PoolStats{
		TotalConns:        stat.TotalConns(),
		IdleConns:         stat.IdleConns(),
		AcquiredConns:     stat.AcquiredConns(),
		MaxConns:          stat.MaxConns(),
		EmptyAcquireCount: stat.EmptyAcquireCount(),
	}
}

// HealthHandler reports database reachability plus pool pressure. A failed
// ping answers 503 so load balancers stop routing to this instance.
func HealthHandler(pool *pgxpool.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
		defer cancel()

		if err := pool.Ping(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
				"status": "unavailable",
				"error":  err.Error(),
				"pool":   poolStats(pool),
			})
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"status": "ok",
			"pool":   poolStats(pool),
		})
	}
}
