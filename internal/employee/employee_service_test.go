package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	attendanceMock "go-attendo/internal/attendance/mock"
	"go-attendo/internal/bootstrap"
	"go-attendo/internal/employee"
	employeeerrors "go-attendo/internal/employee/errors"
	employeeMock "go-attendo/internal/employee/mock"
	"go-attendo/internal/events"
	"go-attendo/internal/messaging/kafka"
	kafkaMock "go-attendo/internal/messaging/kafka/mock"
	"go-attendo/internal/shared/cachekey"
	"go-attendo/internal/shared/contextutil"
	"go-attendo/internal/shared/counter"
	counterMock "go-attendo/internal/shared/counter/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
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
	db         *sql.DB
	sqlMock    sqlmock.Sqlmock
	service    employee.Service
	repo       *employeeMock.MockRepository
	counter    *counterMock.MockRepository
	attendance *attendanceMock.MockRepository
	outbox     *kafkaMock.MockOutboxRepository
	redismock  redismock.ClientMock
	audit      *recordingAudit
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	rdb, redisMock := redismock.NewClientMock()
	repo := employeeMock.NewMockRepository(ctrl)
	counterRepo := counterMock.NewMockRepository(ctrl)
	attendanceRepo := attendanceMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)
	audit := &recordingAudit{}

	svc := employee.NewService(db, repo, employee.ServiceConfig{
		Counter:    counterRepo,
		Attendance: attendanceRepo,
		Outbox:     outboxRepo,
		Redis:      rdb,
		Audit:      audit,
		Location:   time.UTC,
		Now:        func() time.Time { return fixedNow },
	})

	return &serviceDeps{
		db:         db,
		sqlMock:    sqlMock,
		service:    svc,
		repo:       repo,
		counter:    counterRepo,
		attendance: attendanceRepo,
		outbox:     outboxRepo,
		redismock:  redisMock,
		audit:      audit,
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

func TestEmployeeService_Create(t *testing.T) {
	req := employee.CreateEmployeeRequest{
		FullName:   " Jane Doe ",
		Email:      "Jane@Example.com ",
		Password:   "secret1",
		Department: "Engineering",
	}

	t.Run("success - auto generate employee code", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := contextutil.WithRequestID(context.Background(), "req-create")
		newID := uuid.Nil

		expectTx(t, deps.sqlMock, true)
		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().GetNextValue(gomock.Any(), counter.EmployeeCode).Return(int64(7), nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *employee.Employee) error {
				assert.Equal(t, "Jane Doe", e.FullName)
				assert.Equal(t, "jane@example.com", e.Email)
				assert.Equal(t, "EMP007", e.EmployeeCode)
				assert.Equal(t, employee.RoleEmployee, e.Role)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte("secret1")))
				newID = e.ID
				return nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ev kafka.OutboxEvent) error {
				assert.Equal(t, "req-create", ev.RequestID)
				assert.Equal(t, kafka.AggregateEmployee, ev.AggregateType)
				assert.Equal(t, events.EmployeeRegistered, ev.EventType)
				assert.Equal(t, events.EmployeeLifecycleTopic, ev.Topic)

				var payload events.EmployeeRegisteredEvent
				require.NoError(t, json.Unmarshal(ev.Payload, &payload))
				assert.Equal(t, "EMP007", payload.EmployeeCode)
				assert.Equal(t, "Engineering", payload.Department)
				return nil
			})
		deps.redismock.ExpectDel(cachekey.DepartmentHeadcount).SetVal(1)

		resp, err := deps.service.Create(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, newID.String(), resp.ID)
		assert.Equal(t, "EMP007", resp.EmployeeCode)
		assert.Equal(t, "jane@example.com", resp.Email)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("explicit code skips counter", func(t *testing.T) {
		deps := setupServiceTest(t)
		withCode := req
		withCode.EmployeeCode = "OPS-1"
		withCode.Role = employee.RoleManager

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *employee.Employee) error {
				assert.Equal(t, "OPS-1", e.EmployeeCode)
				assert.Equal(t, employee.RoleManager, e.Role)
				return nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.redismock.ExpectDel(cachekey.DepartmentHeadcount).SetVal(0)

		resp, err := deps.service.Create(context.Background(), withCode)

		require.NoError(t, err)
		assert.Equal(t, "OPS-1", resp.EmployeeCode)
	})

	t.Run("duplicate email maps to conflict", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, false)
		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().GetNextValue(gomock.Any(), counter.EmployeeCode).Return(int64(8), nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_email"})

		_, err := deps.service.Create(context.Background(), req)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeAlreadyExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate code maps to conflict", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, false)
		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().GetNextValue(gomock.Any(), counter.EmployeeCode).Return(int64(1), nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(errors.New(`ERROR: duplicate key value violates unique constraint "uq_employee_code"`))

		_, err := deps.service.Create(context.Background(), req)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeCodeAlreadyExists)
	})

	t.Run("outbox failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, false)
		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().GetNextValue(gomock.Any(), counter.EmployeeCode).Return(int64(2), nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))

		_, err := deps.service.Create(context.Background(), req)

		assert.EqualError(t, err, "insert failed")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_GetAll(t *testing.T) {
	rows := []employee.Employee{
		{ID: uuid.New(), FullName: "Charlie", Email: "c@x.io", EmployeeCode: "EMP003", Department: "Sales"},
		{ID: uuid.New(), FullName: "alice", Email: "a@x.io", EmployeeCode: "EMP001", Department: "Engineering"},
		{ID: uuid.New(), FullName: "Bob", Email: "b@x.io", EmployeeCode: "EMP002", Department: "Engineering"},
	}

	t.Run("sorts by name case insensitively", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindAllByRole(gomock.Any(), employee.RoleEmployee).Return(append([]employee.Employee(nil), rows...), nil)

		resp, total, err := deps.service.GetAll(context.Background(), employee.ListQuery{Page: 1, PageSize: 10})

		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, resp, 3)
		assert.Equal(t, []string{"alice", "Bob", "Charlie"}, []string{resp[0].Name, resp[1].Name, resp[2].Name})
	})

	t.Run("filters by department and query then paginates", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindAllByRole(gomock.Any(), employee.RoleEmployee).Return(append([]employee.Employee(nil), rows...), nil)

		resp, total, err := deps.service.GetAll(context.Background(), employee.ListQuery{
			Department: "engineering",
			SortBy:     "employee_code",
			SortDir:    "desc",
			Page:       2,
			PageSize:   1,
		})

		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, resp, 1)
		assert.Equal(t, "EMP001", resp[0].EmployeeCode)
	})

	t.Run("search matches code", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindAllByRole(gomock.Any(), employee.RoleEmployee).Return(append([]employee.Employee(nil), rows...), nil)

		resp, total, err := deps.service.GetAll(context.Background(), employee.ListQuery{Q: "emp002", Page: 1, PageSize: 10})

		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, "Bob", resp[0].Name)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindAllByRole(gomock.Any(), employee.RoleEmployee).Return(append([]employee.Employee(nil), rows...), nil)

		resp, total, err := deps.service.GetAll(context.Background(), employee.ListQuery{Page: 5, PageSize: 10})

		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Empty(t, resp)
	})

	t.Run("huge page does not overflow the window", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindAllByRole(gomock.Any(), employee.RoleEmployee).Return(append([]employee.Employee(nil), rows...), nil)

		resp, total, err := deps.service.GetAll(context.Background(), employee.ListQuery{Page: math.MaxInt, PageSize: 2})

		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Empty(t, resp)
	})
}

func TestEmployeeService_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.GetByID(context.Background(), "nope")
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()
		deps.repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(context.Background(), id.String())
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()
		deps.repo.EXPECT().FindByID(gomock.Any(), id).Return(&employee.Employee{
			ID: id, FullName: "Jane", Role: employee.RoleEmployee, EmployeeCode: "EMP004", CreatedAt: fixedNow,
		}, nil)

		resp, err := deps.service.GetByID(context.Background(), id.String())
		require.NoError(t, err)
		assert.Equal(t, "EMP004", resp.EmployeeCode)
		assert.Equal(t, "2026-03-10T08:30:00Z", resp.CreatedAt)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	t.Run("removes employee and attendance", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()
		ctx := contextutil.WithUserID(context.Background(), "manager-1")

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), id).Return(&employee.Employee{
			ID: id, Role: employee.RoleEmployee, EmployeeCode: "EMP009",
		}, nil)
		deps.attendance.EXPECT().WithTx(gomock.Any()).Return(deps.attendance)
		deps.attendance.EXPECT().DeleteByEmployee(gomock.Any(), id).Return(int64(12), nil)
		deps.repo.EXPECT().Delete(gomock.Any(), id).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ev kafka.OutboxEvent) error {
				var payload events.EmployeeDeletedEvent
				require.NoError(t, json.Unmarshal(ev.Payload, &payload))
				assert.Equal(t, int64(12), payload.AttendanceRemoved)
				assert.Equal(t, "manager-1", payload.DeletedBy)
				return nil
			})
		deps.redismock.ExpectDel(cachekey.DepartmentHeadcount, cachekey.ManagerDashboard("2026-03-10")).SetVal(2)

		err := deps.service.Delete(ctx, id.String())

		require.NoError(t, err)
		require.Len(t, deps.audit.entries, 1)
		assert.Equal(t, "EMPLOYEE_DELETED", deps.audit.entries[0].Action)
		assert.Equal(t, "manager-1", deps.audit.entries[0].ActorID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("managers cannot be deleted", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), id).Return(&employee.Employee{ID: id, Role: employee.RoleManager}, nil)

		err := deps.service.Delete(context.Background(), id.String())

		assert.ErrorIs(t, err, employeeerrors.ErrCannotDeleteManager)
		assert.Empty(t, deps.audit.entries)
	})

	t.Run("unknown employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.Delete(context.Background(), id.String())

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("attendance cleanup failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), id).Return(&employee.Employee{ID: id, Role: employee.RoleEmployee}, nil)
		deps.attendance.EXPECT().WithTx(gomock.Any()).Return(deps.attendance)
		deps.attendance.EXPECT().DeleteByEmployee(gomock.Any(), id).Return(int64(0), errors.New("boom"))

		err := deps.service.Delete(context.Background(), id.String())

		assert.EqualError(t, err, "boom")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}
