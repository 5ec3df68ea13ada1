package department

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-attendo/internal/shared/cachekey"
	"go-attendo/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const headcountTTL = time.Hour

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]DepartmentResponse, error)
	Headcounts(ctx context.Context) (map[string]int, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// GetAll lists roster departments. The list is cached until an employee is
// created or removed.
func (s *service) GetAll(ctx context.Context) ([]DepartmentResponse, error) {
	key := cachekey.DepartmentHeadcount

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, key).Bytes()
		if err == nil {
			var resp []DepartmentResponse
			if json.Unmarshal(cached, &resp) == nil {
				return resp, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("department cache read failed", zap.Error(err))
		}
	}

	v, err, _ := s.sf.Do(key, func() (any, error) {
		rows, err := s.repo.HeadcountByDepartment(ctx)
		if err != nil {
			s.logger.Error("load department headcount failed",
				zap.String("request_id", contextutil.GetRequestID(ctx)),
				zap.Error(err),
			)
			return nil, err
		}

		resp := make([]DepartmentResponse, len(rows))
		for i, r := range rows {
			resp[i] = DepartmentResponse{Name: r.Name, Headcount: r.Headcount}
		}

		if s.rdb != nil {
			if payload, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, key, payload, headcountTTL).Err(); err != nil {
					s.logger.Warn("department cache write failed", zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]DepartmentResponse), nil
}

func (s *service) Headcounts(ctx context.Context) (map[string]int, error) {
	list, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int, len(list))
	for _, d := range list {
		out[d.Name] = d.Headcount
	}
	return out, nil
}
