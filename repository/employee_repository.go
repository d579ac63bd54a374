package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/CoriMyp/bot-bugalter/models"
	"gorm.io/gorm"
)

// EmployeeRepositoryImpl implements EmployeeRepository interface.
// Employee IDs come from the chat platform, so the key is int64 and the
// generic base does not apply.
type EmployeeRepositoryImpl struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &EmployeeRepositoryImpl{db: db}
}

func (r *EmployeeRepositoryImpl) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(TxContextKey).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db
}

// ByID retrieves an employee by chat user ID, nil when absent
func (r *EmployeeRepositoryImpl) ByID(ctx context.Context, id int64) (*models.Employee, error) {
	db := r.getDB(ctx)
	var employee models.Employee
	err := db.Where("id = ?", id).Last(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find employee %d: %w", id, err)
	}
	return &employee, nil
}

// List retrieves all employees
func (r *EmployeeRepositoryImpl) List(ctx context.Context) ([]*models.Employee, error) {
	db := r.getDB(ctx)
	var employees []*models.Employee
	if err := db.Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// Save inserts a new employee
func (r *EmployeeRepositoryImpl) Save(ctx context.Context, employee *models.Employee) error {
	db := r.getDB(ctx)
	if err := db.Create(employee).Error; err != nil {
		return fmt.Errorf("failed to save employee: %w", err)
	}
	return nil
}

// Delete removes an employee row permanently
func (r *EmployeeRepositoryImpl) Delete(ctx context.Context, id int64) error {
	db := r.getDB(ctx)
	if err := db.Where("id = ?", id).Delete(&models.Employee{}).Error; err != nil {
		return fmt.Errorf("failed to delete employee %d: %w", id, err)
	}
	return nil
}

// UpdateFields applies a partial update to one employee
func (r *EmployeeRepositoryImpl) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	db := r.getDB(ctx)
	err := db.Model(&models.Employee{}).Where("id = ?", id).Updates(fields).Error
	if err != nil {
		return fmt.Errorf("failed to update employee %d: %w", id, err)
	}
	return nil
}

// AdminRepositoryImpl implements AdminRepository interface
type AdminRepositoryImpl struct {
	db *gorm.DB
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &AdminRepositoryImpl{db: db}
}

func (r *AdminRepositoryImpl) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(TxContextKey).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db
}

// IsAdmin reports whether the employee holds the admin marker
func (r *AdminRepositoryImpl) IsAdmin(ctx context.Context, employeeID int64) (bool, error) {
	db := r.getDB(ctx)
	var count int64
	err := db.Model(&models.Admin{}).Where("employee_id = ?", employeeID).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check admin %d: %w", employeeID, err)
	}
	return count > 0, nil
}

// Grant marks an employee as admin. Granting twice is a no-op.
func (r *AdminRepositoryImpl) Grant(ctx context.Context, employeeID int64) error {
	isAdmin, err := r.IsAdmin(ctx, employeeID)
	if err != nil {
		return err
	}
	if isAdmin {
		return nil
	}
	db := r.getDB(ctx)
	if err := db.Create(&models.Admin{EmployeeID: employeeID}).Error; err != nil {
		return fmt.Errorf("failed to grant admin %d: %w", employeeID, err)
	}
	return nil
}

// Revoke removes the admin marker
func (r *AdminRepositoryImpl) Revoke(ctx context.Context, employeeID int64) error {
	db := r.getDB(ctx)
	err := db.Where("employee_id = ?", employeeID).Delete(&models.Admin{}).Error
	if err != nil {
		return fmt.Errorf("failed to revoke admin %d: %w", employeeID, err)
	}
	return nil
}

// List retrieves all admin markers
func (r *AdminRepositoryImpl) List(ctx context.Context) ([]*models.Admin, error) {
	db := r.getDB(ctx)
	var admins []*models.Admin
	if err := db.Find(&admins).Error; err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	return admins, nil
}

// WaitingUserRepositoryImpl implements WaitingUserRepository interface
type WaitingUserRepositoryImpl struct {
	db *gorm.DB
}

// NewWaitingUserRepository creates a new waiting user repository
func NewWaitingUserRepository(db *gorm.DB) WaitingUserRepository {
	return &WaitingUserRepositoryImpl{db: db}
}

func (r *WaitingUserRepositoryImpl) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(TxContextKey).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db
}

// ByID retrieves a pending access request, nil when absent
func (r *WaitingUserRepositoryImpl) ByID(ctx context.Context, id int64) (*models.WaitingUser, error) {
	db := r.getDB(ctx)
	var user models.WaitingUser
	err := db.Where("id = ?", id).Last(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find waiting user %d: %w", id, err)
	}
	return &user, nil
}

// List retrieves all pending access requests
func (r *WaitingUserRepositoryImpl) List(ctx context.Context) ([]*models.WaitingUser, error) {
	db := r.getDB(ctx)
	var users []*models.WaitingUser
	if err := db.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list waiting users: %w", err)
	}
	return users, nil
}

// Save inserts a pending access request
func (r *WaitingUserRepositoryImpl) Save(ctx context.Context, user *models.WaitingUser) error {
	db := r.getDB(ctx)
	if err := db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to save waiting user: %w", err)
	}
	return nil
}

// Delete removes a pending access request
func (r *WaitingUserRepositoryImpl) Delete(ctx context.Context, id int64) error {
	db := r.getDB(ctx)
	err := db.Where("id = ?", id).Delete(&models.WaitingUser{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete waiting user %d: %w", id, err)
	}
	return nil
}
