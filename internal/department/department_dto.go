package department

type DepartmentResponse struct {
	Name      string `json:"name"`
	Headcount int    `json:"headcount"`
}
