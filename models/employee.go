package models

import "time"

// Employee is keyed by the external chat user id, not an autoincrement.
// Adjustment is the running manual correction to the derived balance;
// paying out a salary lowers it by the current balance.
type Employee struct {
	ID         int64   `gorm:"primaryKey" json:"id"`
	Name       string  `gorm:"size:255;not null" json:"name"`
	Username   string  `gorm:"size:255" json:"username"`
	Adjustment float64 `gorm:"not null;default:0" json:"adjustment"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Reports []Report `gorm:"foreignKey:EmployeeID" json:"reports,omitempty"`
}

func (Employee) TableName() string {
	return "employees"
}

// EmployeeFilter represents filter criteria for employee queries
type EmployeeFilter struct {
	ID       *int64
	Username *string
}

// Admin marks an employee as an administrator.
type Admin struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	EmployeeID int64     `gorm:"not null;uniqueIndex" json:"employee_id"`
	Employee   *Employee `gorm:"foreignKey:EmployeeID;references:ID" json:"employee,omitempty"`
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Admin) TableName() string {
	return "admins"
}

// WaitingUser is an access request pending admin approval.
type WaitingUser struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Username  string    `gorm:"size:255" json:"username"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (WaitingUser) TableName() string {
	return "waiting_users"
}
