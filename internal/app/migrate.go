package app

import (
	"context"
	"fmt"

	"go-attendo/internal/attendance"
	"go-attendo/internal/employee"

	"gorm.io/gorm"
)

// rawDDL covers the tables written through database/sql rather than GORM.
var rawDDL = []string{
	`CREATE TABLE IF NOT EXISTS outbox_events (
	id UUID PRIMARY KEY,
	request_id TEXT NOT NULL,
	aggregate_type VARCHAR(50) NOT NULL,
	aggregate_id TEXT NOT NULL,
	event_type VARCHAR(100) NOT NULL,
	topic VARCHAR(200) NOT NULL,
	payload JSONB NOT NULL,
	status VARCHAR(20) NOT NULL DEFAULT 'pending',
	retry_count INT NOT NULL DEFAULT 0,
	next_retry_at TIMESTAMPTZ,
	error_message TEXT,
	processed_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	`CREATE INDEX IF NOT EXISTS idx_outbox_events_pending
	ON outbox_events (status, next_retry_at, created_at)`,
	`CREATE TABLE IF NOT EXISTS counters (
	counter_type VARCHAR(50) PRIMARY KEY,
	last_value BIGINT NOT NULL DEFAULT 0,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
}

// Migrate creates or updates the schema. Employees go first because
// attendances reference them.
func Migrate(ctx context.Context, db *gorm.DB) error {
	conn := db.WithContext(ctx)

	if err := conn.AutoMigrate(&employee.Employee{}, &attendance.Attendance{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, stmt := range rawDDL {
		if err := conn.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
