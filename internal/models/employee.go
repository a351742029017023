package models

// Employee represents an employee entity.
type Employee struct {
	ID         int64   `form:"id"         json:"id"`
	FirstName  string  `form:"firstName"  json:"firstName"`
	LastName   string  `form:"lastName"   json:"lastName"`
	Email      string  `form:"email"      json:"email"`
	Position   string  `form:"position"   json:"position"`
	Department string  `form:"department" json:"department"`
	Salary     float64 `form:"salary"     json:"salary"`
}

// IsNew reports whether the employee has not been persisted yet.
func (e Employee) IsNew() bool {
	return e.ID == 0
}

// FullName returns the display name used by the HTML views.
func (e Employee) FullName() string {
	switch {
	case e.FirstName == "":
		return e.LastName
	case e.LastName == "":
		return e.FirstName
	default:
		return e.FirstName + " " + e.LastName
	}
}
