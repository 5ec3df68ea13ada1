package department

import (
	"context"

	"gorm.io/gorm"
)

const rosterRole = "employee"

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	HeadcountByDepartment(ctx context.Context) ([]Headcount, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) HeadcountByDepartment(ctx context.Context) ([]Headcount, error) {
	var rows []Headcount
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("department AS name, COUNT(*) AS headcount").
		Where("role = ? AND department <> ''", rosterRole).
		Group("department").
		Order("department ASC").
		Scan(&rows).Error
	return rows, err
}
