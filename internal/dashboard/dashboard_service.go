package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-attendo/internal/attendance"
	attendanceerrors "go-attendo/internal/attendance/errors"
	"go-attendo/internal/department"
	"go-attendo/internal/employee"
	"go-attendo/internal/shared/cachekey"
	"go-attendo/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	recentLimit = 7

	managerBuildTimeout = 15 * time.Second
)

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	Employee(ctx context.Context, employeeID string) (EmployeeDashboard, error)
	Manager(ctx context.Context) (ManagerDashboard, error)
}

type ServiceConfig struct {
	Attendance  attendance.Repository
	Employees   employee.Repository
	Departments department.Service
	Redis       *redis.Client
	// CacheTTL of zero disables the manager dashboard cache.
	CacheTTL time.Duration
	Location *time.Location
	Now      func() time.Time
}

type service struct {
	attendance  attendance.Repository
	employees   employee.Repository
	departments department.Service
	rdb         *redis.Client
	ttl         time.Duration
	loc         *time.Location
	now         func() time.Time
	sf          *singleflight.Group
	logger      *zap.Logger
}

func NewService(cfg ServiceConfig, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}

	return &service{
		attendance:  cfg.Attendance,
		employees:   cfg.Employees,
		departments: cfg.Departments,
		rdb:         cfg.Redis,
		ttl:         cfg.CacheTTL,
		loc:         loc,
		now:         now,
		sf:          &singleflight.Group{},
		logger:      l,
	}
}

func (s *service) Employee(ctx context.Context, employeeID string) (EmployeeDashboard, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return EmployeeDashboard{}, attendanceerrors.ErrInvalidEmployeeID
	}

	now := s.now()
	todayStart, todayEnd := attendance.DayBounds(now, s.loc)
	local := now.In(s.loc)
	monthStart, monthEnd := attendance.MonthBounds(local.Year(), local.Month(), s.loc)
	recentStart := todayStart.AddDate(0, 0, -recentLimit)

	var (
		today  *attendance.Attendance
		month  []attendance.Attendance
		recent []attendance.Attendance
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		row, err := s.attendance.FindByEmployeeAndDay(gCtx, empID, todayStart, todayEnd)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		today = row
		return err
	})

	g.Go(func() error {
		rows, err := s.attendance.FindAll(gCtx, attendance.Filter{
			EmployeeID: empID,
			Start:      &monthStart,
			End:        &monthEnd,
		})
		month = rows
		return err
	})

	g.Go(func() error {
		rows, err := s.attendance.FindAll(gCtx, attendance.Filter{
			EmployeeID: empID,
			Start:      &recentStart,
			End:        &todayEnd,
			Limit:      recentLimit,
		})
		recent = rows
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("load employee dashboard failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return EmployeeDashboard{}, err
	}

	resp := EmployeeDashboard{
		TodayStatus: TodayStatus{Status: attendance.StatusAbsent},
		MonthStats:  BuildMonthStats(month, int(local.Month()), local.Year()),
		Recent:      make([]RecentAttendance, len(recent)),
	}
	if today != nil {
		resp.TodayStatus = TodayStatus{
			CheckedIn:  today.CheckedIn(),
			CheckedOut: today.CheckedOut(),
			CheckIn:    s.formatTime(today.ClockIn),
			CheckOut:   s.formatTime(today.ClockOut),
			Status:     today.Status,
		}
	}
	for i, r := range recent {
		resp.Recent[i] = RecentAttendance{
			Date:       attendance.FormatDate(r.AttendanceDate, s.loc),
			CheckIn:    s.formatTime(r.ClockIn),
			CheckOut:   s.formatTime(r.ClockOut),
			Status:     r.Status,
			TotalHours: attendance.EffectiveHours(r),
		}
	}
	return resp, nil
}

// Manager builds the team dashboard for today. Results are cached per
// calendar day; check-ins and employee removals drop the entry.
func (s *service) Manager(ctx context.Context) (ManagerDashboard, error) {
	now := s.now()
	day := attendance.FormatDate(now, s.loc)
	key := cachekey.ManagerDashboard(day)

	if s.rdb != nil && s.ttl > 0 {
		cached, err := s.rdb.Get(ctx, key).Bytes()
		if err == nil {
			var resp ManagerDashboard
			if json.Unmarshal(cached, &resp) == nil {
				return resp, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("dashboard cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	// Shared by every caller waiting on key; detached from the first caller's
	// cancellation.
	v, err, _ := s.sf.Do(key, func() (any, error) {
		buildCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), managerBuildTimeout)
		defer cancel()

		resp, err := s.buildManager(buildCtx, now, day)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil && s.ttl > 0 {
			if payload, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(buildCtx, key, payload, s.ttl).Err(); err != nil {
					s.logger.Warn("dashboard cache write failed", zap.String("key", key), zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		s.logger.Error("load manager dashboard failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.Error(err),
		)
		return ManagerDashboard{}, err
	}
	return v.(ManagerDashboard), nil
}

func (s *service) buildManager(ctx context.Context, now time.Time, day string) (ManagerDashboard, error) {
	todayStart, todayEnd := attendance.DayBounds(now, s.loc)
	weekStart := todayStart.AddDate(0, 0, -(trendDays - 1))

	var (
		roster     int64
		today      []attendance.Attendance
		week       []attendance.Attendance
		headcounts map[string]int
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.employees.CountByRole(gCtx, employee.RoleEmployee)
		roster = n
		return err
	})

	g.Go(func() error {
		rows, err := s.attendance.FindAll(gCtx, attendance.Filter{Start: &todayStart, End: &todayEnd})
		today = rows
		return err
	})

	g.Go(func() error {
		rows, err := s.attendance.FindAll(gCtx, attendance.Filter{Start: &weekStart, End: &todayEnd})
		week = rows
		return err
	})

	g.Go(func() error {
		m, err := s.departments.Headcounts(gCtx)
		headcounts = m
		return err
	})

	if err := g.Wait(); err != nil {
		return ManagerDashboard{}, err
	}

	return ManagerDashboard{
		Date:            day,
		TotalEmployees:  int(roster),
		TodayStats:      BuildTodayStats(int(roster), today),
		AbsentToday:     AbsentEmployees(today),
		WeeklyTrend:     BuildWeeklyTrend(week, now, s.loc),
		DepartmentStats: BuildDepartmentStats(today, headcounts),
	}, nil
}

func (s *service) formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.In(s.loc).Format(time.RFC3339)
	return &v
}
