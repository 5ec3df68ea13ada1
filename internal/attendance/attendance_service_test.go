package attendance_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"go-attendo/internal/attendance"
	attendanceerrors "go-attendo/internal/attendance/errors"
	attendanceMock "go-attendo/internal/attendance/mock"
	"go-attendo/internal/bootstrap"
	"go-attendo/internal/events"
	"go-attendo/internal/messaging/kafka"
	kafkaMock "go-attendo/internal/messaging/kafka/mock"
	"go-attendo/internal/shared/cachekey"
	"go-attendo/internal/shared/contextutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC)

type recordingAudit struct {
	entries []bootstrap.AuditLog
}

func (r *recordingAudit) Log(_ context.Context, entry bootstrap.AuditLog) {
	r.entries = append(r.entries, entry)
}

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   attendance.Service
	repo      *attendanceMock.MockRepository
	outbox    *kafkaMock.MockOutboxRepository
	redismock redismock.ClientMock
	registry  *prometheus.Registry
	audit     *recordingAudit
	now       time.Time
}

func setupServiceTest(t *testing.T, now time.Time) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	rdb, redisMock := redismock.NewClientMock()
	repo := attendanceMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)
	reg := prometheus.NewRegistry()
	audit := &recordingAudit{}

	svc := attendance.NewService(db, repo, attendance.ServiceConfig{
		Location: time.UTC,
		Now:      func() time.Time { return now },
		Outbox:   outboxRepo,
		Redis:    rdb,
		Metrics:  attendance.NewMetrics(reg),
		Audit:    audit,
	})

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		outbox:    outboxRepo,
		redismock: redisMock,
		registry:  reg,
		audit:     audit,
		now:       now,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func dayWindow(now time.Time) (time.Time, time.Time) {
	return attendance.DayBounds(now, time.UTC)
}

func TestAttendanceService_CheckIn(t *testing.T) {
	empID := uuid.New()

	t.Run("first check-in of the day", func(t *testing.T) {
		deps := setupServiceTest(t, fixedNow)
		ctx := contextutil.WithRequestID(context.Background(), "req-1")
		start, end := dayWindow(fixedNow)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByEmployeeAndDay(gomock.Any(), empID, start, end).Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().
			InsertCheckIn(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *attendance.Attendance) (bool, error) {
				assert.Equal(t, empID, a.EmployeeID)
				assert.Equal(t, start, a.AttendanceDate)
				assert.Equal(t, attendance.StatusPresent, a.Status)
				return true, nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ev kafka.OutboxEvent) error {
				assert.Equal(t, "req-1", ev.RequestID)
				assert.Equal(t, events.AttendanceCheckedIn, ev.EventType)
				assert.Equal(t, events.AttendanceLifecycleTopic, ev.Topic)

				var payload events.AttendanceRecordedEvent
				require.NoError(t, json.Unmarshal(ev.Payload, &payload))
				assert.Equal(t, "2026-03-10", payload.Date)
				assert.Equal(t, "present", payload.Status)
				return nil
			})
		deps.redismock.ExpectDel(cachekey.ManagerDashboard("2026-03-10")).SetVal(1)

		resp, err := deps.service.CheckIn(ctx, empID.String())

		require.NoError(t, err)
		assert.Equal(t, attendance.StatusPresent, resp.Status)
		assert.Equal(t, "2026-03-10", resp.Date)
		require.NotNil(t, resp.CheckIn)
		assert.Equal(t, "2026-03-10T08:30:00Z", *resp.CheckIn)
		assert.Nil(t, resp.CheckOut)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())

		n, err := testutil.GatherAndCount(deps.registry, "attendo_attendance_check_ins_total")
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("late check-in", func(t *testing.T) {
		late := time.Date(2026, 3, 10, 9, 1, 0, 0, time.UTC)
		deps := setupServiceTest(t, late)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByEmployeeAndDay(gomock.Any(), empID, gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().InsertCheckIn(gomock.Any(), gomock.Any()).Return(true, nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.redismock.ExpectDel(cachekey.ManagerDashboard("2026-03-10")).SetVal(0)

		resp, err := deps.service.CheckIn(context.Background(), empID.String())

		require.NoError(t, err)
		assert.Equal(t, attendance.StatusLate, resp.Status)
	})

	t.Run("already checked in", func(t *testing.T) {
		deps := setupServiceTest(t, fixedNow)
		clockIn := fixedNow.Add(-time.Hour)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByEmployeeAndDay(gomock.Any(), empID, gomock.Any(), gomock.Any()).
			Return(&attendance.Attendance{ID: uuid.New(), ClockIn: &clockIn}, nil)

		_, err := deps.service.CheckIn(context.Background(), empID.String())

		assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyCheckedIn)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())

		n, err := testutil.GatherAndCount(deps.registry, "attendo_attendance_rejected_total")
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("concurrent check-in wins the race", func(t *testing.T) {
		deps := setupServiceTest(t, fixedNow)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByEmployeeAndDay(gomock.Any(), empID, gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().InsertCheckIn(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := deps.service.CheckIn(context.Background(), empID.String())

		assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyCheckedIn)
	})

	t.Run("lookup failure", func(t *testing.T) {
		deps := setupServiceTest(t, fixedNow)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByEmployeeAndDay(gomock.Any(), empID, gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

		_, err := deps.service.CheckIn(context.Background(), empID.String())

		assert.EqualError(t, err, "connection reset")
	})

	t.Run("invalid employee id", func(t *testing.T) {
		deps := setupServiceTest(t, fixedNow)

		_, err := deps.service.CheckIn(context.Background(), "not-a-uuid")

		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidEmployeeID)
	})
}

func TestAttendanceService_CheckOut(t *testing.T) {
	empID := uuid.New()
	now := time.Date(2026, 3, 10, 17, 45, 0, 0, time.UTC)
	clockIn := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t, now)
		recID := uuid.New()
		existing := &attendance.Attendance{
			ID:             recID,
			EmployeeID:     empID,
			AttendanceDate: attendance.StartOfDay(now, time.UTC),
			ClockIn:        &clockIn,
			Status:         attendance.StatusLate,
		}

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByEmployeeAndDay(gomock.Any(), empID, gomock.Any(), gomock.Any()).Return(existing, nil)
		deps.repo.EXPECT().
			MarkCheckOut(gomock.Any(), recID, now, 8.25).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, out time.Time, hours float64) (*attendance.Attendance, error) {
				row := *existing
				row.ClockOut = &out
				row.TotalHours = &hours
				return &row, nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ev kafka.OutboxEvent) error {
				assert.Equal(t, events.AttendanceCheckedOut, ev.EventType)
				assert.Equal(t, recID.String(), ev.AggregateID)
				return nil
			})
		deps.redismock.ExpectDel(cachekey.ManagerDashboard("2026-03-10")).SetVal(1)

		resp, err := deps.service.CheckOut(context.Background(), empID.String())

		require.NoError(t, err)
		assert.Equal(t, 8.25, resp.TotalHours)
		assert.Equal(t, attendance.StatusLate, resp.Status)
		require.NotNil(t, resp.CheckOut)
		assert.Equal(t, "2026-03-10T17:45:00Z", *resp.CheckOut)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("not checked in", func(t *testing.T) {
		deps := setupServiceTest(t, now)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByEmployeeAndDay(gomock.Any(), empID, gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.CheckOut(context.Background(), empID.String())

		assert.ErrorIs(t, err, attendanceerrors.ErrNotCheckedIn)
	})

	t.Run("already checked out", func(t *testing.T) {
		deps := setupServiceTest(t, now)
		out := now.Add(-time.Hour)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByEmployeeAndDay(gomock.Any(), empID, gomock.Any(), gomock.Any()).
			Return(&attendance.Attendance{ID: uuid.New(), ClockIn: &clockIn, ClockOut: &out}, nil)

		_, err := deps.service.CheckOut(context.Background(), empID.String())

		assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyCheckedOut)
	})

	t.Run("concurrent check-out wins the race", func(t *testing.T) {
		deps := setupServiceTest(t, now)
		recID := uuid.New()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByEmployeeAndDay(gomock.Any(), empID, gomock.Any(), gomock.Any()).
			Return(&attendance.Attendance{ID: recID, ClockIn: &clockIn}, nil)
		deps.repo.EXPECT().MarkCheckOut(gomock.Any(), recID, now, 8.25).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.CheckOut(context.Background(), empID.String())

		assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyCheckedOut)
	})
}

func TestAttendanceService_Today(t *testing.T) {
	empID := uuid.New()

	t.Run("no record reads as absent", func(t *testing.T) {
		deps := setupServiceTest(t, fixedNow)
		deps.repo.EXPECT().FindByEmployeeAndDay(gomock.Any(), empID, gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

		resp, err := deps.service.Today(context.Background(), empID.String())

		require.NoError(t, err)
		assert.Equal(t, attendance.TodayResponse{Status: attendance.StatusAbsent}, resp)
	})

	t.Run("completed day recomputes hours", func(t *testing.T) {
		deps := setupServiceTest(t, fixedNow)
		in := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
		out := time.Date(2026, 3, 10, 16, 30, 0, 0, time.UTC)
		stale := 1.0
		deps.repo.EXPECT().
			FindByEmployeeAndDay(gomock.Any(), empID, gomock.Any(), gomock.Any()).
			Return(&attendance.Attendance{ClockIn: &in, ClockOut: &out, TotalHours: &stale, Status: attendance.StatusPresent}, nil)

		resp, err := deps.service.Today(context.Background(), empID.String())

		require.NoError(t, err)
		assert.True(t, resp.CheckedIn)
		assert.True(t, resp.CheckedOut)
		require.NotNil(t, resp.TotalHours)
		assert.Equal(t, 8.5, *resp.TotalHours)
	})
}

func TestAttendanceService_MySummary(t *testing.T) {
	empID := uuid.New()

	t.Run("defaults to the current month", func(t *testing.T) {
		deps := setupServiceTest(t, fixedNow)
		deps.repo.EXPECT().
			FindAll(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f attendance.Filter) ([]attendance.Attendance, error) {
				assert.Equal(t, empID, f.EmployeeID)
				require.NotNil(t, f.Start)
				require.NotNil(t, f.End)
				assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), *f.Start)
				assert.Equal(t, 31, f.End.Day())
				return nil, nil
			})

		got, err := deps.service.MySummary(context.Background(), empID.String(), attendance.PeriodQuery{})

		require.NoError(t, err)
		assert.Equal(t, 3, got.Month)
		assert.Equal(t, 2026, got.Year)
		assert.Zero(t, got.TotalDays)
	})

	t.Run("invalid month", func(t *testing.T) {
		deps := setupServiceTest(t, fixedNow)

		_, err := deps.service.MySummary(context.Background(), empID.String(), attendance.PeriodQuery{Month: "13"})

		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidMonth)
	})

	t.Run("invalid year", func(t *testing.T) {
		deps := setupServiceTest(t, fixedNow)

		_, err := deps.service.MySummary(context.Background(), empID.String(), attendance.PeriodQuery{Year: "20x6"})

		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidYear)
	})
}

func TestAttendanceService_MyHistory(t *testing.T) {
	empID := uuid.New()

	t.Run("month without year is ignored", func(t *testing.T) {
		deps := setupServiceTest(t, fixedNow)
		deps.repo.EXPECT().
			FindAll(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f attendance.Filter) ([]attendance.Attendance, error) {
				assert.Nil(t, f.Start)
				assert.Equal(t, 100, f.Limit)
				return []attendance.Attendance{{ID: uuid.New(), EmployeeID: empID, Status: attendance.StatusAbsent}}, nil
			})

		got, err := deps.service.MyHistory(context.Background(), empID.String(), attendance.PeriodQuery{Month: "2"})

		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestAttendanceService_GetAll(t *testing.T) {
	t.Run("unknown employee code yields empty list", func(t *testing.T) {
		deps := setupServiceTest(t, fixedNow)
		deps.repo.EXPECT().FindEmployeeIDByCode(gomock.Any(), "EMP999").Return(uuid.Nil, nil)

		got, total, err := deps.service.GetAll(context.Background(), attendance.ListQuery{EmployeeCode: "EMP999"})

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
		assert.Zero(t, total)
	})

	t.Run("date range includes the whole end day", func(t *testing.T) {
		deps := setupServiceTest(t, fixedNow)
		empID := uuid.New()
		deps.repo.EXPECT().FindEmployeeIDByCode(gomock.Any(), "EMP001").Return(empID, nil)
		deps.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(int64(1), nil)
		deps.repo.EXPECT().
			FindAll(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f attendance.Filter) ([]attendance.Attendance, error) {
				assert.Equal(t, empID, f.EmployeeID)
				assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), *f.Start)
				assert.Equal(t, time.Date(2026, 3, 5, 23, 59, 59, int(999*time.Millisecond), time.UTC), *f.End)
				assert.Equal(t, attendance.StatusLate, f.Status)
				assert.Equal(t, 500, f.Limit)
				assert.Zero(t, f.Offset)
				return nil, nil
			})

		_, _, err := deps.service.GetAll(context.Background(), attendance.ListQuery{
			EmployeeCode: "EMP001",
			StartDate:    "2026-03-01",
			EndDate:      "2026-03-05",
			Status:       "late",
		})

		require.NoError(t, err)
	})

	t.Run("total is not capped by the page size", func(t *testing.T) {
		deps := setupServiceTest(t, fixedNow)
		deps.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(int64(1200), nil)
		deps.repo.EXPECT().
			FindAll(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f attendance.Filter) ([]attendance.Attendance, error) {
				assert.Equal(t, 500, f.Limit)
				assert.Equal(t, 1000, f.Offset)
				return make([]attendance.Attendance, 200), nil
			})

		got, total, err := deps.service.GetAll(context.Background(), attendance.ListQuery{Page: 3, PageSize: 500})

		require.NoError(t, err)
		assert.Equal(t, int64(1200), total)
		assert.Len(t, got, 200)
	})

	t.Run("page past the end skips the query", func(t *testing.T) {
		deps := setupServiceTest(t, fixedNow)
		deps.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(int64(3), nil)

		got, total, err := deps.service.GetAll(context.Background(), attendance.ListQuery{Page: math.MaxInt, PageSize: 2})

		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	tests := []struct {
		name string
		q    attendance.ListQuery
		want error
	}{
		{"one sided range", attendance.ListQuery{StartDate: "2026-03-01"}, attendanceerrors.ErrIncompleteDateRange},
		{"bad date", attendance.ListQuery{StartDate: "03/01/2026", EndDate: "2026-03-05"}, attendanceerrors.ErrInvalidDateFormat},
		{"reversed range", attendance.ListQuery{StartDate: "2026-03-05", EndDate: "2026-03-01"}, attendanceerrors.ErrInvalidDateRange},
		{"unknown status", attendance.ListQuery{Status: "vacation"}, attendanceerrors.ErrInvalidStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := setupServiceTest(t, fixedNow)

			_, _, err := deps.service.GetAll(context.Background(), tt.q)

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAttendanceService_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t, fixedNow)
		id := uuid.New()
		deps.repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(context.Background(), id.String())

		assert.ErrorIs(t, err, attendanceerrors.ErrRecordNotFound)
	})

	t.Run("includes employee summary", func(t *testing.T) {
		deps := setupServiceTest(t, fixedNow)
		id := uuid.New()
		deps.repo.EXPECT().FindByID(gomock.Any(), id).Return(&attendance.Attendance{
			ID:     id,
			Status: attendance.StatusPresent,
			Employee: &attendance.EmployeeRef{
				ID: uuid.New(), FullName: "Jane", EmployeeCode: "EMP001", Department: "Engineering",
			},
		}, nil)

		got, err := deps.service.GetByID(context.Background(), id.String())

		require.NoError(t, err)
		require.NotNil(t, got.Employee)
		assert.Equal(t, "EMP001", got.Employee.EmployeeCode)
	})
}

func TestAttendanceService_TodayStatus(t *testing.T) {
	deps := setupServiceTest(t, fixedNow)
	in := fixedNow
	deps.repo.EXPECT().
		FindAll(gomock.Any(), gomock.Any()).
		Return([]attendance.Attendance{
			{ID: uuid.New(), ClockIn: &in, Status: attendance.StatusPresent},
			{ID: uuid.New(), Status: attendance.StatusAbsent},
		}, nil)

	got, err := deps.service.TodayStatus(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", got.Date)
	assert.Equal(t, attendance.TodayCounts{Present: 1, Absent: 1, Total: 2}, got.TodayCounts)
	assert.Len(t, got.Attendance, 2)
}

func TestAttendanceService_Export(t *testing.T) {
	t.Run("csv", func(t *testing.T) {
		deps := setupServiceTest(t, fixedNow)
		ctx := contextutil.WithUserID(context.Background(), "manager-1")
		deps.repo.EXPECT().FindAll(gomock.Any(), gomock.Any()).Return(exportFixture(), nil)

		file, err := deps.service.Export(ctx, attendance.ExportQuery{Format: "csv"})

		require.NoError(t, err)
		assert.Equal(t, "attendance_1773131400.csv", file.Filename)
		assert.Equal(t, "text/csv", file.ContentType)
		assert.True(t, strings.HasPrefix(string(file.Body), "Date,Employee ID,"))
		assert.Contains(t, string(file.Body), `"Doe, Jane"`)

		require.Len(t, deps.audit.entries, 1)
		assert.Equal(t, "ATTENDANCE_EXPORTED", deps.audit.entries[0].Action)
		assert.Equal(t, "manager-1", deps.audit.entries[0].ActorID)
	})

	t.Run("xlsx", func(t *testing.T) {
		deps := setupServiceTest(t, fixedNow)
		deps.repo.EXPECT().FindAll(gomock.Any(), gomock.Any()).Return(nil, nil)

		file, err := deps.service.Export(context.Background(), attendance.ExportQuery{Format: "xlsx"})

		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(file.Filename, ".xlsx"))
		assert.NotEmpty(t, file.Body)
	})

	t.Run("unknown format", func(t *testing.T) {
		deps := setupServiceTest(t, fixedNow)

		_, err := deps.service.Export(context.Background(), attendance.ExportQuery{Format: "pdf"})

		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidExportFormat)
	})
}
