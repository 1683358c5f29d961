package models

// StaffRole is the job title of a team member.
type StaffRole string

const (
	RoleAdministrator StaffRole = "Administrator"
	RoleOptician      StaffRole = "Optician"
	RoleSecretary     StaffRole = "Secretary"
	RoleSalesperson   StaffRole = "Salesperson"
	RoleTechnician    StaffRole = "Technician"
)

// StaffStatus marks whether a team member is currently employed.
type StaffStatus string

const (
	StaffActive   StaffStatus = "Active"
	StaffInactive StaffStatus = "Inactive"
)

type StaffMember struct {
	ID        string      `json:"id"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone"`
	Role      StaffRole   `json:"role"`
	Salary    *float64    `json:"salary,omitempty"`
	HireDate  string      `json:"hire_date"`
	Status    StaffStatus `json:"status"`
}

func (s *StaffMember) DisplayName() string {
	return s.FirstName + " " + s.LastName
}

type CreateStaffRequest struct {
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      StaffRole `json:"role"`
	Salary    *float64  `json:"salary"`
	HireDate  string    `json:"hire_date"`
}

type UpdateStaffRequest struct {
	FirstName *string      `json:"first_name"`
	LastName  *string      `json:"last_name"`
	Email     *string      `json:"email"`
	Phone     *string      `json:"phone"`
	Role      *StaffRole   `json:"role"`
	Salary    *float64     `json:"salary"`
	HireDate  *string      `json:"hire_date"`
	Status    *StaffStatus `json:"status"`
}
