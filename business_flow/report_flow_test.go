package businessflow

import (
	"context"
	"testing"

	"github.com/CoriMyp/bot-bugalter/app/dto"
	"github.com/CoriMyp/bot-bugalter/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ingestFixture() (*ReportFlowImpl, *fakeReportRepo) {
	reportRepo := &fakeReportRepo{}
	flow := &ReportFlowImpl{
		reportRepo: reportRepo,
		employeeRepo: &fakeEmployeeRepo{employees: map[int64]*models.Employee{
			42: {ID: 42, Name: "Ann"},
		}},
		sourceRepo: &fakeSourceRepo{sources: map[uint]*models.Source{
			1: {ID: 1, Name: "Forum"},
		}},
		countryRepo: &fakeCountryRepo{countries: map[uint]*models.Country{
			1: {ID: 1, Name: "Georgia"},
		}},
		bookmakerRepo: &fakeBookmakerRepo{bookmakers: map[uint]*models.Bookmaker{
			1: {ID: 1, Name: "login1", DisplayName: "Betline", CountryID: 1, IsActive: true},
		}},
		historyRepo: &fakeHistoryRepo{},
	}
	return flow, reportRepo
}

func validIngestRequest() *dto.IngestReportRequest {
	return &dto.IngestReportRequest{
		Date:                 "2026-08-20",
		SourceName:           "Forum",
		CountryName:          "Georgia",
		BookmakerDisplayName: "Betline",
		BookmakerLogin:       "login1",
		BetAmount:            100,
		ReturnAmount:         120,
		EmployeeID:           42,
	}
}

func TestIngestAccumulatesLookupFailures(t *testing.T) {
	flow, reportRepo := ingestFixture()

	req := validIngestRequest()
	req.EmployeeID = 999
	req.SourceName = "Nowhere"

	resp, err := flow.Ingest(context.Background(), req, nil)
	require.NoError(t, err)

	assert.False(t, resp.Accepted)
	assert.Contains(t, resp.Message, "employee not found")
	assert.Contains(t, resp.Message, "source not found")
	assert.NotContains(t, resp.Message, "country not found")
	assert.Empty(t, reportRepo.saved, "no report row may be written on lookup failure")
}

func TestIngestBookmakerFailureIsDistinct(t *testing.T) {
	flow, reportRepo := ingestFixture()

	req := validIngestRequest()
	req.BookmakerLogin = "unknown"

	resp, err := flow.Ingest(context.Background(), req, nil)
	require.NoError(t, err)

	assert.False(t, resp.Accepted)
	assert.Equal(t, "bookmaker not found", resp.Message)
	assert.Empty(t, reportRepo.saved)
}

func TestIngestInactiveBookmakerNotMatched(t *testing.T) {
	flow, reportRepo := ingestFixture()
	flow.bookmakerRepo.(*fakeBookmakerRepo).bookmakers[1].IsActive = false

	resp, err := flow.Ingest(context.Background(), validIngestRequest(), nil)
	require.NoError(t, err)

	assert.False(t, resp.Accepted)
	assert.Equal(t, "bookmaker not found", resp.Message)
	assert.Empty(t, reportRepo.saved)
}

func TestIngestUnparsableDate(t *testing.T) {
	flow, reportRepo := ingestFixture()

	req := validIngestRequest()
	req.Date = "20/08/2026"

	resp, err := flow.Ingest(context.Background(), req, nil)
	require.NoError(t, err)

	assert.False(t, resp.Accepted)
	assert.Equal(t, "invalid date", resp.Message)
	assert.Empty(t, reportRepo.saved)
}

func TestIngestNormalizesLookupNames(t *testing.T) {
	flow, reportRepo := ingestFixture()

	req := validIngestRequest()
	req.SourceName = "fORUM"
	req.CountryName = "georgia"
	req.BookmakerDisplayName = "BETLINE"
	req.EmployeeID = 999 // force failure before any write

	resp, err := flow.Ingest(context.Background(), req, nil)
	require.NoError(t, err)

	assert.Equal(t, "employee not found", resp.Message,
		"source and country must resolve despite the casing")
	assert.Empty(t, reportRepo.saved)
}
