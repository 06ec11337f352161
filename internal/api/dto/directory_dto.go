package dto

// RoleForm carries the add/edit role form fields. Checkbox inputs submit
// "true" when checked and are absent otherwise.
type RoleForm struct {
	Name            string `json:"name" form:"name"`
	Description     string `json:"description" form:"description"`
	Onboarding      bool   `json:"onboarding" form:"onboarding"`
	EmployeeUpdates bool   `json:"employee_updates" form:"employee_updates"`
	Offboarding     bool   `json:"offboarding" form:"offboarding"`
	ManageModify    bool   `json:"manage_modify" form:"manage_modify"`
	Admin           bool   `json:"admin" form:"admin"`
	Payroll         bool   `json:"payroll" form:"payroll"`
	APIReport       bool   `json:"api_report" form:"api_report"`
}

// TeamForm carries the add/edit team form fields.
type TeamForm struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
}

// UserForm carries the add/edit user form fields. TeamID stays a string so
// the "no team" option can submit empty.
type UserForm struct {
	Username  string `json:"username" form:"username"`
	FirstName string `json:"first_name" form:"first_name"`
	LastName  string `json:"last_name" form:"last_name"`
	RoleID    int64  `json:"role_id" form:"role_id"`
	TeamID    string `json:"team_id" form:"team_id"`
	Password  string `json:"password" form:"password"`
}
