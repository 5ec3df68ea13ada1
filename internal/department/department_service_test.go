package department_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-attendo/internal/department"
	departmentMock "go-attendo/internal/department/mock"
	"go-attendo/internal/shared/cachekey"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDepartmentService_GetAll(t *testing.T) {
	ctx := context.Background()
	want := []department.DepartmentResponse{
		{Name: "Engineering", Headcount: 4},
		{Name: "Sales", Headcount: 2},
	}

	t.Run("cache miss loads and stores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := departmentMock.NewMockRepository(ctrl)
		rdb, redisMock := redismock.NewClientMock()
		svc := department.NewService(repo, rdb)

		payload, err := json.Marshal(want)
		require.NoError(t, err)

		redisMock.ExpectGet(cachekey.DepartmentHeadcount).RedisNil()
		repo.EXPECT().HeadcountByDepartment(gomock.Any()).Return([]department.Headcount{
			{Name: "Engineering", Headcount: 4},
			{Name: "Sales", Headcount: 2},
		}, nil)
		redisMock.ExpectSet(cachekey.DepartmentHeadcount, payload, time.Hour).SetVal("OK")

		got, err := svc.GetAll(ctx)

		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("cache hit skips the database", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := departmentMock.NewMockRepository(ctrl)
		rdb, redisMock := redismock.NewClientMock()
		svc := department.NewService(repo, rdb)

		payload, _ := json.Marshal(want)
		redisMock.ExpectGet(cachekey.DepartmentHeadcount).SetVal(string(payload))

		got, err := svc.GetAll(ctx)

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("works without redis", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := departmentMock.NewMockRepository(ctrl)
		svc := department.NewService(repo, nil)

		repo.EXPECT().HeadcountByDepartment(gomock.Any()).Return(nil, nil)

		got, err := svc.GetAll(ctx)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := departmentMock.NewMockRepository(ctrl)
		svc := department.NewService(repo, nil)

		repo.EXPECT().HeadcountByDepartment(gomock.Any()).Return(nil, errors.New("db down"))

		_, err := svc.GetAll(ctx)

		assert.EqualError(t, err, "db down")
	})
}

func TestDepartmentService_Headcounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := departmentMock.NewMockRepository(ctrl)
	svc := department.NewService(repo, nil)

	repo.EXPECT().HeadcountByDepartment(gomock.Any()).Return([]department.Headcount{
		{Name: "Engineering", Headcount: 4},
	}, nil)

	got, err := svc.Headcounts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Engineering": 4}, got)
}
