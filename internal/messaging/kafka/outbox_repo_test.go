package kafka_test

import (
	"context"
	"testing"
	"time"

	"go-attendo/internal/events"
	"go-attendo/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOutboxEvent(t *testing.T) {
	e, err := kafka.NewOutboxEvent("", kafka.AggregateEmployee, "emp-1",
		events.EmployeeDeleted, events.EmployeeLifecycleTopic,
		events.EmployeeDeletedEvent{EventType: events.EmployeeDeleted, EmployeeID: "emp-1"})

	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)
	assert.NotEmpty(t, e.RequestID)
	assert.Equal(t, kafka.OutboxStatusPending, e.Status)
	assert.JSONEq(t, `{"event_type":"employee_deleted","employee_id":"emp-1","employee_code":"","attendance_removed":0,"occurred_at":"0001-01-01T00:00:00Z"}`, string(e.Payload))
}

func TestOutboxRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create inside transaction", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO outbox_events").
			WithArgs("evt-1", "req-1", kafka.AggregateAttendance, "att-1",
				events.AttendanceCheckedIn, events.AttendanceLifecycleTopic, []byte(`{}`), kafka.OutboxStatusPending).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		tx, err := db.Begin()
		require.NoError(t, err)

		repo := kafka.NewOutboxRepository(db).WithTx(tx)
		err = repo.Create(ctx, kafka.OutboxEvent{
			ID:            "evt-1",
			RequestID:     "req-1",
			AggregateType: kafka.AggregateAttendance,
			AggregateID:   "att-1",
			EventType:     events.AttendanceCheckedIn,
			Topic:         events.AttendanceLifecycleTopic,
			Payload:       []byte(`{}`),
		})
		require.NoError(t, err)
		require.NoError(t, tx.Commit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("list pending", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		now := time.Now()
		rows := sqlmock.NewRows([]string{
			"id", "request_id", "aggregate_type", "aggregate_id", "event_type",
			"topic", "payload", "status", "retry_count", "next_retry_at",
		}).AddRow("evt-1", "req-1", kafka.AggregateAttendance, "att-1", events.AttendanceCheckedOut,
			events.AttendanceLifecycleTopic, []byte(`{}`), kafka.OutboxStatusFailed, 2, now)

		mock.ExpectQuery("FROM outbox_events").
			WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 50).
			WillReturnRows(rows)

		got, err := kafka.NewOutboxRepository(db).ListPending(ctx, 50)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "req-1", got[0].RequestID)
		assert.Equal(t, 2, got[0].RetryCount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("purge sent", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("DELETE FROM outbox_events").
			WithArgs(kafka.OutboxStatusSent, int64(86400)).
			WillReturnResult(sqlmock.NewResult(0, 7))

		n, err := kafka.NewOutboxRepository(db).PurgeSent(ctx, 24*time.Hour)

		require.NoError(t, err)
		assert.Equal(t, int64(7), n)
	})
}
