package services

import (
	"context"
	"fmt"
	"time"

	"github.com/localnerve/amenitydb/internal/config"
	"github.com/localnerve/amenitydb/internal/utils"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// Healthy reports whether every check passed
func (r HealthCheckResult) Healthy() bool {
	return r.Status == "healthy"
}

// HealthCheck performs a health check of the service
func HealthCheck(ctx context.Context, cfg *config.Config, db *gorm.DB) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	// Networked stores are probed at the TCP level first so an unreachable
	// server is reported as such instead of as a pool error
	if !cfg.IsSQLite() && cfg.DBHost != "" {
		timeout := utils.DefaultPingTimeout
		if deadline, ok := ctx.Deadline(); ok {
			timeout = time.Until(deadline)
		}
		if err := utils.PingHost(cfg.DBHost, cfg.DBPort, timeout); err != nil {
			result.Status = "unhealthy"
			result.Database = "unreachable"
			result.Details["database_host_error"] = err.Error()
			result.ErrorMessage = fmt.Sprintf("Database host unreachable: %v", err)
			log.Error().Err(err).Msg("Health check failed - database host")
			return result
		}
		result.Details["database_host"] = "reachable"
	}

	// Check database connectivity
	sqlDB, err := db.DB()
	if err != nil {
		result.Status = "unhealthy"
		result.Database = "error"
		result.Details["database_error"] = err.Error()
		result.ErrorMessage = fmt.Sprintf("Database connection error: %v", err)
		log.Error().Err(err).Msg("Health check failed - database connection")
		return result
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		result.Status = "unhealthy"
		result.Database = "unreachable"
		result.Details["database_ping_error"] = err.Error()
		result.ErrorMessage = fmt.Sprintf("Database ping failed: %v", err)
		log.Error().Err(err).Msg("Health check failed - database ping")
		return result
	}

	result.Database = "ok"
	result.Details["database_type"] = cfg.DBType
	result.Details["database_name"] = cfg.DBDatabase
	stats := sqlDB.Stats()
	result.Details["open_connections"] = fmt.Sprintf("%d", stats.OpenConnections)

	log.Debug().Msg("Health check passed - all systems operational")
	return result
}
