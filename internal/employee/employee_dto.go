package employee

type CreateEmployeeRequest struct {
	FullName     string `json:"name" binding:"required,max=255"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	Role         string `json:"role" binding:"omitempty,oneof=employee manager"`
	EmployeeCode string `json:"employee_code" binding:"omitempty,max=32"`
	Department   string `json:"department" binding:"omitempty,max=100"`
}

type ListQuery struct {
	Q          string `form:"q"`
	Department string `form:"department"`
	SortBy     string `form:"sort_by,default=name"`
	SortDir    string `form:"sort_dir,default=asc"`
	Page       int    `form:"page,default=1" binding:"min=1,max=100000"`
	PageSize   int    `form:"page_size,default=10" binding:"min=1,max=100"`
}

type EmployeeResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	EmployeeCode string `json:"employee_code"`
	Department   string `json:"department,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
}
