package department

// Headcount is one department label from the employee roster and the number
// of employees (role employee) that carry it.
type Headcount struct {
	Name      string `gorm:"column:name"`
	Headcount int    `gorm:"column:headcount"`
}
