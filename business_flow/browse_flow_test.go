package businessflow

import (
	"context"
	"testing"
	"time"

	"github.com/CoriMyp/bot-bugalter/app/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowseWorkflow(t *testing.T) {
	ctx := context.Background()
	reportFlow := &fakeReportFlow{reports: map[uint]dto.ReportDTO{
		1: {ID: 1, BetAmount: 100},
		2: {ID: 2, BetAmount: 200},
	}}
	flow := NewBrowseFlow(NewMemorySessionStore(time.Minute), reportFlow)

	const userID int64 = 42

	session, err := flow.Start(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, StateAwaitingPeriod, session.State)

	t.Run("select before period is rejected", func(t *testing.T) {
		_, err := flow.Select(ctx, userID, 1)
		require.Error(t, err)
	})

	reports, err := flow.SubmitPeriod(ctx, userID, "2026-08-01", "2026-08-31")
	require.NoError(t, err)
	assert.Len(t, reports, 2)

	t.Run("second period submission is rejected", func(t *testing.T) {
		_, err := flow.SubmitPeriod(ctx, userID, "2026-08-01", "2026-08-31")
		require.Error(t, err)
	})

	t.Run("selecting an unlisted report is rejected", func(t *testing.T) {
		_, err := flow.Select(ctx, userID, 99)
		require.Error(t, err)
	})

	report, err := flow.Select(ctx, userID, 2)
	require.NoError(t, err)
	assert.Equal(t, uint(2), report.ID)
}

func TestBrowseWorkflowCancel(t *testing.T) {
	ctx := context.Background()
	flow := NewBrowseFlow(NewMemorySessionStore(time.Minute), &fakeReportFlow{})

	_, err := flow.Start(ctx, 7)
	require.NoError(t, err)
	require.NoError(t, flow.Cancel(ctx, 7))

	_, err = flow.SubmitPeriod(ctx, 7, "2026-08-01", "2026-08-31")
	require.Error(t, err)
	assert.True(t, IsSessionExpired(err))
}

func TestBrowseWorkflowExpiredSession(t *testing.T) {
	ctx := context.Background()
	flow := NewBrowseFlow(NewMemorySessionStore(time.Minute), &fakeReportFlow{})

	_, err := flow.SubmitPeriod(ctx, 1000, "2026-08-01", "2026-08-31")
	require.Error(t, err)
	assert.True(t, IsSessionExpired(err))
}
