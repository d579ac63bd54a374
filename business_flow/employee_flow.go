// Package businessflow contains the core business logic and use cases for employee lifecycle
package businessflow

import (
	"context"
	"fmt"

	"github.com/CoriMyp/bot-bugalter/app/dto"
	"github.com/CoriMyp/bot-bugalter/ledger"
	"github.com/CoriMyp/bot-bugalter/models"
	"github.com/CoriMyp/bot-bugalter/repository"
	"gorm.io/gorm"
)

// EmployeeFlow defines operations for the employee lifecycle: access
// requests, promotion, adjustments, salary payout, admin markers.
type EmployeeFlow interface {
	RequestAccess(ctx context.Context, req *dto.RequestAccessRequest) error
	ListWaiting(ctx context.Context) ([]dto.WaitingUserDTO, error)
	Promote(ctx context.Context, req *dto.PromoteWaitingUserRequest, actor *Actor) (*dto.EmployeeDTO, error)
	Reject(ctx context.Context, id int64, actor *Actor) error

	ListEmployees(ctx context.Context) ([]dto.EmployeeDTO, error)
	Adjust(ctx context.Context, req *dto.AdjustEmployeeRequest, actor *Actor) error
	PaySalary(ctx context.Context, id int64, actor *Actor) error
	Remove(ctx context.Context, id int64, actor *Actor) error

	IsAdmin(ctx context.Context, id int64) (bool, error)
	GrantAdmin(ctx context.Context, id int64, actor *Actor) error
	RevokeAdmin(ctx context.Context, id int64, actor *Actor) error
}

// EmployeeFlowImpl implements EmployeeFlow
type EmployeeFlowImpl struct {
	employeeRepo repository.EmployeeRepository
	waitingRepo  repository.WaitingUserRepository
	adminRepo    repository.AdminRepository
	reportRepo   repository.ReportRepository
	historyRepo  repository.HistoryRepository
	db           *gorm.DB
}

// NewEmployeeFlow constructs an EmployeeFlow
func NewEmployeeFlow(
	employeeRepo repository.EmployeeRepository,
	waitingRepo repository.WaitingUserRepository,
	adminRepo repository.AdminRepository,
	reportRepo repository.ReportRepository,
	historyRepo repository.HistoryRepository,
	db *gorm.DB,
) EmployeeFlow {
	return &EmployeeFlowImpl{
		employeeRepo: employeeRepo,
		waitingRepo:  waitingRepo,
		adminRepo:    adminRepo,
		reportRepo:   reportRepo,
		historyRepo:  historyRepo,
		db:           db,
	}
}

// RequestAccess records a chat user asking to join. Repeat requests and
// requests from existing employees are silently ignored.
func (f *EmployeeFlowImpl) RequestAccess(ctx context.Context, req *dto.RequestAccessRequest) error {
	employee, err := f.employeeRepo.ByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if employee != nil {
		return nil
	}

	waiting, err := f.waitingRepo.ByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if waiting != nil {
		return nil
	}

	return f.waitingRepo.Save(ctx, &models.WaitingUser{
		ID:       req.ID,
		Name:     req.Name,
		Username: req.Username,
	})
}

// ListWaiting lists pending access requests
func (f *EmployeeFlowImpl) ListWaiting(ctx context.Context) ([]dto.WaitingUserDTO, error) {
	users, err := f.waitingRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WaitingUserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, dto.WaitingUserDTO{ID: u.ID, Name: u.Name, Username: u.Username})
	}
	return out, nil
}

// Promote turns a pending request into an employee and removes the
// request.
func (f *EmployeeFlowImpl) Promote(ctx context.Context, req *dto.PromoteWaitingUserRequest, actor *Actor) (*dto.EmployeeDTO, error) {
	waiting, err := f.waitingRepo.ByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if waiting == nil {
		return nil, NewBusinessError("WAITING_USER_NOT_FOUND", "Waiting user not found", ErrWaitingUserNotFound)
	}

	employee := &models.Employee{
		ID:       waiting.ID,
		Name:     waiting.Name,
		Username: waiting.Username,
	}

	err = repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		if err := f.employeeRepo.Save(txCtx, employee); err != nil {
			return err
		}
		if err := f.waitingRepo.Delete(txCtx, waiting.ID); err != nil {
			return err
		}
		return recordOperation(txCtx, f.historyRepo, actor, models.OperationEmployeeCreated,
			fmt.Sprintf("employee %s (%d) promoted", employee.Name, employee.ID))
	})
	if err != nil {
		return nil, err
	}

	return &dto.EmployeeDTO{ID: employee.ID, Name: employee.Name, Username: employee.Username}, nil
}

// Reject drops a pending access request
func (f *EmployeeFlowImpl) Reject(ctx context.Context, id int64, actor *Actor) error {
	waiting, err := f.waitingRepo.ByID(ctx, id)
	if err != nil {
		return err
	}
	if waiting == nil {
		return NewBusinessError("WAITING_USER_NOT_FOUND", "Waiting user not found", ErrWaitingUserNotFound)
	}
	return f.waitingRepo.Delete(ctx, id)
}

// ListEmployees lists employees with their admin markers
func (f *EmployeeFlowImpl) ListEmployees(ctx context.Context) ([]dto.EmployeeDTO, error) {
	employees, err := f.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	admins, err := f.adminRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	adminSet := make(map[int64]bool, len(admins))
	for _, a := range admins {
		adminSet[a.EmployeeID] = true
	}

	out := make([]dto.EmployeeDTO, 0, len(employees))
	for _, e := range employees {
		out = append(out, dto.EmployeeDTO{
			ID:       e.ID,
			Name:     e.Name,
			Username: e.Username,
			IsAdmin:  adminSet[e.ID],
		})
	}
	return out, nil
}

// Adjust shifts an employee's adjustment delta
func (f *EmployeeFlowImpl) Adjust(ctx context.Context, req *dto.AdjustEmployeeRequest, actor *Actor) error {
	employee, err := f.employeeRepo.ByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if employee == nil {
		return NewBusinessError("EMPLOYEE_NOT_FOUND", "Employee not found", ErrEmployeeNotFound)
	}

	return repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		fields := map[string]any{"adjustment": employee.Adjustment + req.Delta}
		if err := f.employeeRepo.UpdateFields(txCtx, req.ID, fields); err != nil {
			return err
		}
		return recordOperation(txCtx, f.historyRepo, actor, models.OperationEmployeeAdjusted,
			fmt.Sprintf("employee %d adjusted by %.2f", req.ID, req.Delta))
	})
}

// PaySalary settles an employee's current balance by moving it into the
// adjustment delta, bringing the derived balance to zero.
func (f *EmployeeFlowImpl) PaySalary(ctx context.Context, id int64, actor *Actor) error {
	employee, err := f.employeeRepo.ByID(ctx, id)
	if err != nil {
		return err
	}
	if employee == nil {
		return NewBusinessError("EMPLOYEE_NOT_FOUND", "Employee not found", ErrEmployeeNotFound)
	}

	reports, err := f.reportRepo.ListByEmployee(ctx, id)
	if err != nil {
		return err
	}
	balance := ledger.EmployeeBalance(*employee, deref(reports))

	return repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		fields := map[string]any{"adjustment": employee.Adjustment - balance}
		if err := f.employeeRepo.UpdateFields(txCtx, id, fields); err != nil {
			return err
		}
		return recordOperation(txCtx, f.historyRepo, actor, models.OperationSalaryPaid,
			fmt.Sprintf("employee %d paid %.2f", id, balance))
	})
}

// Remove deletes an employee permanently. Their reports keep the bare
// employee id for historical aggregation.
func (f *EmployeeFlowImpl) Remove(ctx context.Context, id int64, actor *Actor) error {
	employee, err := f.employeeRepo.ByID(ctx, id)
	if err != nil {
		return err
	}
	if employee == nil {
		return NewBusinessError("EMPLOYEE_NOT_FOUND", "Employee not found", ErrEmployeeNotFound)
	}

	return repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		if err := f.adminRepo.Revoke(txCtx, id); err != nil {
			return err
		}
		if err := f.employeeRepo.Delete(txCtx, id); err != nil {
			return err
		}
		return recordOperation(txCtx, f.historyRepo, actor, models.OperationEmployeeRemoved,
			fmt.Sprintf("employee %s (%d) removed", employee.Name, id))
	})
}

// IsAdmin reports whether the employee holds the admin marker
func (f *EmployeeFlowImpl) IsAdmin(ctx context.Context, id int64) (bool, error) {
	return f.adminRepo.IsAdmin(ctx, id)
}

// GrantAdmin marks an employee as admin
func (f *EmployeeFlowImpl) GrantAdmin(ctx context.Context, id int64, actor *Actor) error {
	employee, err := f.employeeRepo.ByID(ctx, id)
	if err != nil {
		return err
	}
	if employee == nil {
		return NewBusinessError("EMPLOYEE_NOT_FOUND", "Employee not found", ErrEmployeeNotFound)
	}

	return repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		if err := f.adminRepo.Grant(txCtx, id); err != nil {
			return err
		}
		return recordOperation(txCtx, f.historyRepo, actor, models.OperationAdminGranted,
			fmt.Sprintf("employee %d granted admin", id))
	})
}

// RevokeAdmin removes the admin marker
func (f *EmployeeFlowImpl) RevokeAdmin(ctx context.Context, id int64, actor *Actor) error {
	isAdmin, err := f.adminRepo.IsAdmin(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin {
		return NewBusinessError("NOT_ADMIN", "Employee is not an admin", ErrNotAdmin)
	}

	return repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		if err := f.adminRepo.Revoke(txCtx, id); err != nil {
			return err
		}
		return recordOperation(txCtx, f.historyRepo, actor, models.OperationAdminRevoked,
			fmt.Sprintf("employee %d admin revoked", id))
	})
}
