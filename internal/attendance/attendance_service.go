package attendance

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	attendanceerrors "go-attendo/internal/attendance/errors"
	"go-attendo/internal/bootstrap"
	"go-attendo/internal/events"
	"go-attendo/internal/messaging/kafka"
	"go-attendo/internal/shared/apperror"
	"go-attendo/internal/shared/cachekey"
	"go-attendo/internal/shared/contextutil"
	"go-attendo/internal/shared/response"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	historyLimit = 100
	listLimit    = 500

	contentTypeCSV  = "text/csv"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	CheckIn(ctx context.Context, employeeID string) (AttendanceResponse, error)
	CheckOut(ctx context.Context, employeeID string) (AttendanceResponse, error)
	Today(ctx context.Context, employeeID string) (TodayResponse, error)
	MyHistory(ctx context.Context, employeeID string, q PeriodQuery) ([]AttendanceResponse, error)
	MySummary(ctx context.Context, employeeID string, q PeriodQuery) (MonthlySummary, error)
	GetAll(ctx context.Context, q ListQuery) ([]AttendanceResponse, int64, error)
	GetByEmployee(ctx context.Context, employeeID string, q PeriodQuery) ([]AttendanceResponse, error)
	GetByID(ctx context.Context, id string) (AttendanceResponse, error)
	TeamSummary(ctx context.Context, q PeriodQuery) (TeamSummary, error)
	TodayStatus(ctx context.Context) (TodayStatusResponse, error)
	Export(ctx context.Context, q ExportQuery) (ExportFile, error)
}

type ServiceConfig struct {
	// Location is the zone that defines calendar days and the 09:00 cutoff.
	Location *time.Location
	Now      func() time.Time
	Outbox   kafka.OutboxRepository
	Redis    *redis.Client
	Metrics  *Metrics
	Audit    bootstrap.AuditLogger
}

type service struct {
	db      *sql.DB
	repo    Repository
	loc     *time.Location
	now     func() time.Time
	outbox  kafka.OutboxRepository
	rdb     *redis.Client
	metrics *Metrics
	audit   bootstrap.AuditLogger
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, cfg ServiceConfig, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &service{
		db:      db,
		repo:    repo,
		loc:     zone(cfg.Location),
		now:     now,
		outbox:  cfg.Outbox,
		rdb:     cfg.Redis,
		metrics: cfg.Metrics,
		audit:   cfg.Audit,
		logger:  l,
	}
}

func (s *service) CheckIn(ctx context.Context, employeeID string) (AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	now := s.now()
	start, end := DayBounds(now, s.loc)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("check-in begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	existing, err := qtx.FindByEmployeeAndDay(ctx, empID, start, end)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("check-in load today failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, err
	}

	next, err := EvaluateCheckIn(empID, existing, now, s.loc)
	if err != nil {
		s.reject(rid, employeeID, err)
		return AttendanceResponse{}, err
	}

	applied, err := qtx.InsertCheckIn(ctx, next)
	if err != nil {
		s.logger.Error("check-in persist failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, err
	}
	if !applied {
		// a concurrent request checked in between the read and the write
		s.reject(rid, employeeID, attendanceerrors.ErrAlreadyCheckedIn)
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedIn
	}

	if err := s.queueEvent(ctx, tx, events.AttendanceCheckedIn, *next); err != nil {
		return AttendanceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("check-in commit failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, err
	}

	s.metrics.observeCheckIn(next.Status)
	s.invalidateDashboard(ctx, now)

	s.logger.Info("check-in recorded",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("attendance_id", next.ID.String()),
		zap.String("status", next.Status.String()),
	)
	return s.toResponse(*next), nil
}

func (s *service) CheckOut(ctx context.Context, employeeID string) (AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	now := s.now()
	start, end := DayBounds(now, s.loc)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("check-out begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	existing, err := qtx.FindByEmployeeAndDay(ctx, empID, start, end)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("check-out load today failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, err
	}

	next, err := EvaluateCheckOut(existing, now)
	if err != nil {
		s.reject(rid, employeeID, err)
		return AttendanceResponse{}, err
	}

	row, err := qtx.MarkCheckOut(ctx, next.ID, *next.ClockOut, *next.TotalHours)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.reject(rid, employeeID, attendanceerrors.ErrAlreadyCheckedOut)
			return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedOut
		}
		s.logger.Error("check-out persist failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, err
	}

	if err := s.queueEvent(ctx, tx, events.AttendanceCheckedOut, *row); err != nil {
		return AttendanceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("check-out commit failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, err
	}

	s.metrics.observeCheckOut(*next.TotalHours)
	s.invalidateDashboard(ctx, now)

	s.logger.Info("check-out recorded",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("attendance_id", row.ID.String()),
		zap.Float64("total_hours", *next.TotalHours),
	)
	return s.toResponse(*row), nil
}

func (s *service) Today(ctx context.Context, employeeID string) (TodayResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return TodayResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	start, end := DayBounds(s.now(), s.loc)
	row, err := s.repo.FindByEmployeeAndDay(ctx, empID, start, end)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TodayResponse{Status: StatusAbsent}, nil
		}
		return TodayResponse{}, err
	}

	resp := TodayResponse{
		CheckedIn:  row.CheckedIn(),
		CheckedOut: row.CheckedOut(),
		CheckIn:    s.formatTime(row.ClockIn),
		CheckOut:   s.formatTime(row.ClockOut),
		TotalHours: row.TotalHours,
		Status:     row.Status,
	}
	if row.CheckedIn() && row.CheckedOut() {
		h := EffectiveHours(*row)
		resp.TotalHours = &h
	}
	return resp, nil
}

func (s *service) MyHistory(ctx context.Context, employeeID string, q PeriodQuery) ([]AttendanceResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidEmployeeID
	}

	f := Filter{EmployeeID: empID, Limit: historyLimit}
	if err := s.applyOptionalPeriod(&f, q); err != nil {
		return nil, err
	}

	rows, err := s.repo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	return s.toResponses(rows), nil
}

func (s *service) MySummary(ctx context.Context, employeeID string, q PeriodQuery) (MonthlySummary, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return MonthlySummary{}, attendanceerrors.ErrInvalidEmployeeID
	}

	month, year, err := s.resolvePeriod(q)
	if err != nil {
		return MonthlySummary{}, err
	}

	start, end := MonthBounds(year, time.Month(month), s.loc)
	rows, err := s.repo.FindAll(ctx, Filter{EmployeeID: empID, Start: &start, End: &end})
	if err != nil {
		return MonthlySummary{}, err
	}
	return SummarizeMonth(rows, month, year), nil
}

// GetAll returns one page of the filtered listing and the total match count.
func (s *service) GetAll(ctx context.Context, q ListQuery) ([]AttendanceResponse, int64, error) {
	f, none, err := s.buildFilter(ctx, q.EmployeeCode, q.StartDate, q.EndDate, q.Status)
	if err != nil || none {
		return []AttendanceResponse{}, 0, err
	}

	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, 0, err
	}

	page, size := q.Page, q.PageSize
	if page < 1 {
		page = 1
	}
	if size < 1 || size > listLimit {
		size = listLimit
	}
	offset, ok := response.Offset(total, page, size)
	if !ok {
		return []AttendanceResponse{}, total, nil
	}
	f.Limit = size
	f.Offset = offset

	rows, err := s.repo.FindAll(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	return s.toResponses(rows), total, nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string, q PeriodQuery) ([]AttendanceResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidEmployeeID
	}

	f := Filter{EmployeeID: empID}
	if err := s.applyOptionalPeriod(&f, q); err != nil {
		return nil, err
	}

	rows, err := s.repo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	return s.toResponses(rows), nil
}

func (s *service) GetByID(ctx context.Context, id string) (AttendanceResponse, error) {
	attID, err := uuid.Parse(id)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidAttendanceID
	}

	row, err := s.repo.FindByID(ctx, attID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrRecordNotFound
		}
		return AttendanceResponse{}, err
	}
	return s.toResponse(*row), nil
}

func (s *service) TeamSummary(ctx context.Context, q PeriodQuery) (TeamSummary, error) {
	month, year, err := s.resolvePeriod(q)
	if err != nil {
		return TeamSummary{}, err
	}

	start, end := MonthBounds(year, time.Month(month), s.loc)
	rows, err := s.repo.FindAll(ctx, Filter{Start: &start, End: &end})
	if err != nil {
		return TeamSummary{}, err
	}
	return SummarizeTeamMonth(rows, month, year), nil
}

func (s *service) TodayStatus(ctx context.Context) (TodayStatusResponse, error) {
	now := s.now()
	start, end := DayBounds(now, s.loc)

	rows, err := s.repo.FindAll(ctx, Filter{Start: &start, End: &end})
	if err != nil {
		return TodayStatusResponse{}, err
	}

	return TodayStatusResponse{
		Date:        FormatDate(now, s.loc),
		TodayCounts: SummarizeToday(rows),
		Attendance:  s.toResponses(rows),
	}, nil
}

func (s *service) Export(ctx context.Context, q ExportQuery) (ExportFile, error) {
	format := q.Format
	if format == "" {
		format = ExportFormatCSV
	}
	if format != ExportFormatCSV && format != ExportFormatXLSX {
		return ExportFile{}, attendanceerrors.ErrInvalidExportFormat
	}

	var rows []Attendance
	f, none, err := s.buildFilter(ctx, q.EmployeeCode, q.StartDate, q.EndDate, "")
	if err != nil {
		return ExportFile{}, err
	}
	if !none {
		rows, err = s.repo.FindAll(ctx, f)
		if err != nil {
			return ExportFile{}, err
		}
	}

	var buf bytes.Buffer
	file := ExportFile{Filename: fmt.Sprintf("attendance_%d.%s", s.now().Unix(), format)}

	switch format {
	case ExportFormatXLSX:
		file.ContentType = contentTypeXLSX
		err = WriteXLSX(&buf, rows, s.loc)
	default:
		file.ContentType = contentTypeCSV
		err = WriteCSV(&buf, rows, s.loc)
	}
	if err != nil {
		s.logger.Error("export attendance failed", zap.String("format", format), zap.Error(err))
		return ExportFile{}, err
	}

	file.Body = buf.Bytes()
	if s.audit != nil {
		s.audit.Log(ctx, bootstrap.AuditLog{
			Action:  "ATTENDANCE_EXPORTED",
			ActorID: contextutil.GetUserID(ctx),
			Message: "attendance export generated",
			Meta: map[string]any{
				"format":        format,
				"rows":          len(rows),
				"employee_code": q.EmployeeCode,
				"start_date":    q.StartDate,
				"end_date":      q.EndDate,
			},
		})
	}
	s.logger.Info("attendance exported",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("format", format),
		zap.Int("rows", len(rows)),
	)
	return file, nil
}

// buildFilter resolves listing parameters. none is true when the employee
// code matches nobody, in which case the result is empty.
func (s *service) buildFilter(ctx context.Context, code, startDate, endDate, status string) (f Filter, none bool, err error) {
	if code != "" {
		id, err := s.repo.FindEmployeeIDByCode(ctx, code)
		if err != nil {
			return Filter{}, false, err
		}
		if id == uuid.Nil {
			return Filter{}, true, nil
		}
		f.EmployeeID = id
	}

	if (startDate == "") != (endDate == "") {
		return Filter{}, false, attendanceerrors.ErrIncompleteDateRange
	}
	if startDate != "" {
		from, err := ParseDate(startDate, s.loc)
		if err != nil {
			return Filter{}, false, attendanceerrors.ErrInvalidDateFormat
		}
		to, err := ParseDate(endDate, s.loc)
		if err != nil {
			return Filter{}, false, attendanceerrors.ErrInvalidDateFormat
		}
		if to.Before(from) {
			return Filter{}, false, attendanceerrors.ErrInvalidDateRange
		}
		start, _ := DayBounds(from, s.loc)
		_, end := DayBounds(to, s.loc)
		f.Start, f.End = &start, &end
	}

	if status != "" {
		st, err := ParseStatus(status)
		if err != nil {
			return Filter{}, false, err
		}
		f.Status = st
	}

	return f, false, nil
}

// applyOptionalPeriod narrows f to a month only when both month and year are set.
func (s *service) applyOptionalPeriod(f *Filter, q PeriodQuery) error {
	if q.Month == "" || q.Year == "" {
		return nil
	}
	month, year, err := s.resolvePeriod(q)
	if err != nil {
		return err
	}
	start, end := MonthBounds(year, time.Month(month), s.loc)
	f.Start, f.End = &start, &end
	return nil
}

// resolvePeriod fills a missing month or year from the current date.
func (s *service) resolvePeriod(q PeriodQuery) (month, year int, err error) {
	now := s.now().In(s.loc)
	month, year = int(now.Month()), now.Year()

	if q.Month != "" {
		month, err = strconv.Atoi(q.Month)
		if err != nil || month < 1 || month > 12 {
			return 0, 0, attendanceerrors.ErrInvalidMonth
		}
	}
	if q.Year != "" {
		year, err = strconv.Atoi(q.Year)
		if err != nil || year < 1000 || year > 9999 {
			return 0, 0, attendanceerrors.ErrInvalidYear
		}
	}
	return month, year, nil
}

func (s *service) queueEvent(ctx context.Context, tx *sql.Tx, eventType string, a Attendance) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	payload := events.AttendanceRecordedEvent{
		EventType:    eventType,
		AttendanceID: a.ID.String(),
		EmployeeID:   a.EmployeeID.String(),
		Date:         FormatDate(a.AttendanceDate, s.loc),
		Status:       a.Status.String(),
		ClockIn:      a.ClockIn,
		ClockOut:     a.ClockOut,
		TotalHours:   a.TotalHours,
		OccurredAt:   s.now().UTC(),
	}

	event, err := kafka.NewOutboxEvent(rid, kafka.AggregateAttendance, a.ID.String(),
		eventType, events.AttendanceLifecycleTopic, payload)
	if err != nil {
		s.logger.Error("marshal attendance event failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		s.logger.Error("attendance outbox persist failed",
			zap.String("request_id", rid),
			zap.String("attendance_id", a.ID.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *service) invalidateDashboard(ctx context.Context, now time.Time) {
	if s.rdb == nil {
		return
	}
	key := cachekey.ManagerDashboard(FormatDate(now, s.loc))
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.logger.Warn("failed to invalidate dashboard cache", zap.String("key", key), zap.Error(err))
	}
}

func (s *service) reject(rid, employeeID string, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		s.metrics.observeRejected(appErr.Code)
	}
	s.logger.Info("attendance transition rejected",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.Error(err),
	)
}

func (s *service) formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.In(s.loc).Format(time.RFC3339)
	return &v
}

func (s *service) toResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:         a.ID.String(),
		EmployeeID: a.EmployeeID.String(),
		Date:       FormatDate(a.AttendanceDate, s.loc),
		CheckIn:    s.formatTime(a.ClockIn),
		CheckOut:   s.formatTime(a.ClockOut),
		TotalHours: EffectiveHours(a),
		Status:     a.Status,
	}
	if a.Employee != nil {
		resp.Employee = &EmployeeSummary{
			ID:           a.Employee.ID.String(),
			Name:         a.Employee.FullName,
			Email:        a.Employee.Email,
			EmployeeCode: a.Employee.EmployeeCode,
			Department:   a.Employee.Department,
		}
	}
	return resp
}

func (s *service) toResponses(rows []Attendance) []AttendanceResponse {
	out := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		out[i] = s.toResponse(r)
	}
	return out
}
