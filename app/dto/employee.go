package dto

// RequestAccessRequest records a chat user asking to join
type RequestAccessRequest struct {
	ID       int64  `json:"id" validate:"required"`
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Username string `json:"username,omitempty" validate:"max=255"`
}

// PromoteWaitingUserRequest turns a pending request into an employee
type PromoteWaitingUserRequest struct {
	ID int64 `json:"id" validate:"required"`
}

// AdjustEmployeeRequest shifts an employee's adjustment delta
type AdjustEmployeeRequest struct {
	ID    int64   `json:"id" validate:"required"`
	Delta float64 `json:"delta" validate:"required"`
}

// EmployeeDTO is the presentation shape of an employee
type EmployeeDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username,omitempty"`
	IsAdmin  bool   `json:"is_admin"`
}

// WaitingUserDTO is the presentation shape of a pending access request
type WaitingUserDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username,omitempty"`
}
