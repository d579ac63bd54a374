// Package businessflow contains the core business logic and use cases for the browse workflow
package businessflow

import (
	"context"

	"github.com/CoriMyp/bot-bugalter/app/dto"
	"github.com/CoriMyp/bot-bugalter/utils"
)

// BrowseFlow drives the multi-step report browsing conversation: the
// user first names a period, then picks one report from the listing.
// Each step is its own operation; nothing blocks between steps.
type BrowseFlow interface {
	Start(ctx context.Context, userID int64) (*BrowseSession, error)
	SubmitPeriod(ctx context.Context, userID int64, startDate, endDate string) ([]dto.ReportDTO, error)
	Select(ctx context.Context, userID int64, reportID uint) (*dto.ReportDTO, error)
	Cancel(ctx context.Context, userID int64) error
}

// BrowseFlowImpl implements BrowseFlow
type BrowseFlowImpl struct {
	sessions   SessionStore
	reportFlow ReportFlow
}

// NewBrowseFlow constructs a BrowseFlow
func NewBrowseFlow(sessions SessionStore, reportFlow ReportFlow) BrowseFlow {
	return &BrowseFlowImpl{
		sessions:   sessions,
		reportFlow: reportFlow,
	}
}

// Start opens a fresh session, replacing any in-flight one for the user
func (f *BrowseFlowImpl) Start(ctx context.Context, userID int64) (*BrowseSession, error) {
	session := &BrowseSession{
		UserID:    userID,
		State:     StateAwaitingPeriod,
		UpdatedAt: utils.UTCNow(),
	}
	if err := f.sessions.Put(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SubmitPeriod records the chosen period, lists the matching reports
// and advances the session to the selection step.
func (f *BrowseFlowImpl) SubmitPeriod(ctx context.Context, userID int64, startDate, endDate string) ([]dto.ReportDTO, error) {
	session, err := f.sessions.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, NewBusinessError("SESSION_EXPIRED", "Browse session expired", ErrSessionExpired)
	}
	if session.State != StateAwaitingPeriod {
		return nil, NewBusinessError("SESSION_WRONG_STEP", "Session is not awaiting a period", ErrSessionNotFound)
	}

	reports, err := f.reportFlow.List(ctx, &dto.ListReportsRequest{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		return nil, err
	}

	session.State = StateAwaitingSelection
	session.StartDate = startDate
	session.EndDate = endDate
	session.ReportIDs = make([]uint, 0, len(reports))
	for _, r := range reports {
		session.ReportIDs = append(session.ReportIDs, r.ID)
	}
	session.UpdatedAt = utils.UTCNow()

	if err := f.sessions.Put(ctx, session); err != nil {
		return nil, err
	}
	return reports, nil
}

// Select resolves the picked report and completes the session. Picking
// an id outside the listed set is rejected without advancing the state.
func (f *BrowseFlowImpl) Select(ctx context.Context, userID int64, reportID uint) (*dto.ReportDTO, error) {
	session, err := f.sessions.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, NewBusinessError("SESSION_EXPIRED", "Browse session expired", ErrSessionExpired)
	}
	if session.State != StateAwaitingSelection {
		return nil, NewBusinessError("SESSION_WRONG_STEP", "Session is not awaiting a selection", ErrSessionNotFound)
	}

	listed := false
	for _, id := range session.ReportIDs {
		if id == reportID {
			listed = true
			break
		}
	}
	if !listed {
		return nil, NewBusinessError("REPORT_NOT_FOUND", "Report is not in the listed set", ErrReportNotFound)
	}

	report, err := f.reportFlow.ByID(ctx, reportID)
	if err != nil {
		return nil, err
	}

	session.State = StateDone
	session.UpdatedAt = utils.UTCNow()
	if err := f.sessions.Put(ctx, session); err != nil {
		return nil, err
	}
	return report, nil
}

// Cancel drops the session regardless of its state
func (f *BrowseFlowImpl) Cancel(ctx context.Context, userID int64) error {
	return f.sessions.Delete(ctx, userID)
}
