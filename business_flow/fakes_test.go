package businessflow

import (
	"context"

	"github.com/CoriMyp/bot-bugalter/app/dto"
	"github.com/CoriMyp/bot-bugalter/models"
	"github.com/CoriMyp/bot-bugalter/repository"
)

// In-memory repository fakes. Each embeds the interface so only the
// methods a test exercises need implementations.

type fakeCountryRepo struct {
	repository.CountryRepository
	countries map[uint]*models.Country
}

func (f *fakeCountryRepo) ByID(ctx context.Context, id uint) (*models.Country, error) {
	return f.countries[id], nil
}

func (f *fakeCountryRepo) ByName(ctx context.Context, name string) (*models.Country, error) {
	for _, c := range f.countries {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCountryRepo) ListLive(ctx context.Context) ([]*models.Country, error) {
	out := make([]*models.Country, 0, len(f.countries))
	for _, c := range f.countries {
		out = append(out, c)
	}
	return out, nil
}

type fakeBookmakerRepo struct {
	repository.BookmakerRepository
	bookmakers map[uint]*models.Bookmaker
}

func (f *fakeBookmakerRepo) ByID(ctx context.Context, id uint) (*models.Bookmaker, error) {
	return f.bookmakers[id], nil
}

func (f *fakeBookmakerRepo) ByLookup(ctx context.Context, name, displayName string, countryID uint) (*models.Bookmaker, error) {
	for _, b := range f.bookmakers {
		if b.Name == name && b.DisplayName == displayName && b.CountryID == countryID && b.IsActive {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookmakerRepo) ListByCountry(ctx context.Context, countryID uint) ([]*models.Bookmaker, error) {
	var out []*models.Bookmaker
	for _, b := range f.bookmakers {
		if b.CountryID == countryID {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeWalletRepo struct {
	repository.WalletRepository
	wallets map[uint]*models.Wallet
}

func (f *fakeWalletRepo) ByID(ctx context.Context, id uint) (*models.Wallet, error) {
	return f.wallets[id], nil
}

func (f *fakeWalletRepo) ListByCountry(ctx context.Context, countryID uint) ([]*models.Wallet, error) {
	var out []*models.Wallet
	for _, w := range f.wallets {
		if w.CountryID != nil && *w.CountryID == countryID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeWalletRepo) ListByCategory(ctx context.Context, category string) ([]*models.Wallet, error) {
	var out []*models.Wallet
	for _, w := range f.wallets {
		if w.Category == category {
			out = append(out, w)
		}
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	repository.EmployeeRepository
	employees map[int64]*models.Employee
}

func (f *fakeEmployeeRepo) ByID(ctx context.Context, id int64) (*models.Employee, error) {
	return f.employees[id], nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]*models.Employee, error) {
	out := make([]*models.Employee, 0, len(f.employees))
	for _, e := range f.employees {
		out = append(out, e)
	}
	return out, nil
}

type fakeSourceRepo struct {
	repository.SourceRepository
	sources map[uint]*models.Source
}

func (f *fakeSourceRepo) ByID(ctx context.Context, id uint) (*models.Source, error) {
	return f.sources[id], nil
}

func (f *fakeSourceRepo) ByName(ctx context.Context, name string) (*models.Source, error) {
	for _, s := range f.sources {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, nil
}

type fakeReportRepo struct {
	repository.ReportRepository
	reports []*models.Report
	saved   []*models.Report
}

func (f *fakeReportRepo) Save(ctx context.Context, report *models.Report) error {
	f.saved = append(f.saved, report)
	return nil
}

func (f *fakeReportRepo) ListByCountry(ctx context.Context, countryID uint) ([]*models.Report, error) {
	var out []*models.Report
	for _, r := range f.reports {
		if r.CountryID == countryID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReportRepo) ListByBookmaker(ctx context.Context, bookmakerID uint) ([]*models.Report, error) {
	var out []*models.Report
	for _, r := range f.reports {
		if r.BookmakerID == bookmakerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReportRepo) ListBySource(ctx context.Context, sourceID uint) ([]*models.Report, error) {
	var out []*models.Report
	for _, r := range f.reports {
		if r.SourceID == sourceID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReportRepo) ListByEmployee(ctx context.Context, employeeID int64) ([]*models.Report, error) {
	var out []*models.Report
	for _, r := range f.reports {
		if r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReportRepo) ByFilter(ctx context.Context, filter models.ReportFilter) ([]*models.Report, error) {
	return f.reports, nil
}

type fakeTransactionRepo struct {
	repository.TransactionRepository
	transactions []*models.Transaction
}

func (f *fakeTransactionRepo) ByFilter(ctx context.Context, filter models.TransactionFilter) ([]*models.Transaction, error) {
	return f.transactions, nil
}

func (f *fakeTransactionRepo) ListByCountry(ctx context.Context, countryID uint) ([]*models.Transaction, error) {
	var out []*models.Transaction
	for _, t := range f.transactions {
		if t.CountryID != nil && *t.CountryID == countryID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTransactionRepo) ListByWallet(ctx context.Context, walletID uint) (incoming, outgoing []*models.Transaction, err error) {
	for _, t := range f.transactions {
		if t.ReceiverWalletID != nil && *t.ReceiverWalletID == walletID {
			incoming = append(incoming, t)
		}
		if t.SenderWalletID != nil && *t.SenderWalletID == walletID {
			outgoing = append(outgoing, t)
		}
	}
	return incoming, outgoing, nil
}

func (f *fakeTransactionRepo) ListByBookmaker(ctx context.Context, bookmakerID uint) (sent, received []*models.Transaction, err error) {
	for _, t := range f.transactions {
		if t.SenderBookmakerID != nil && *t.SenderBookmakerID == bookmakerID {
			sent = append(sent, t)
		}
		if t.ReceiverBookmakerID != nil && *t.ReceiverBookmakerID == bookmakerID {
			received = append(received, t)
		}
	}
	return sent, received, nil
}

type fakeHistoryRepo struct {
	repository.HistoryRepository
	operations  []*models.OperationHistory
	commissions []*models.CommissionHistory
}

func (f *fakeHistoryRepo) AppendOperation(ctx context.Context, entry *models.OperationHistory) error {
	f.operations = append(f.operations, entry)
	return nil
}

func (f *fakeHistoryRepo) AppendCommission(ctx context.Context, entry *models.CommissionHistory) error {
	f.commissions = append(f.commissions, entry)
	return nil
}

// fakeReportFlow satisfies ReportFlow for workflow and export tests.
type fakeReportFlow struct {
	ReportFlow
	reports       map[uint]dto.ReportDTO
	ingestResults []dto.IngestReportResponse
	ingested      []*dto.IngestReportRequest
}

func (f *fakeReportFlow) Ingest(ctx context.Context, req *dto.IngestReportRequest, actor *Actor) (*dto.IngestReportResponse, error) {
	f.ingested = append(f.ingested, req)
	if len(f.ingestResults) == 0 {
		return &dto.IngestReportResponse{Accepted: true, ReportID: uint(len(f.ingested))}, nil
	}
	result := f.ingestResults[0]
	f.ingestResults = f.ingestResults[1:]
	return &result, nil
}

func (f *fakeReportFlow) ByID(ctx context.Context, id uint) (*dto.ReportDTO, error) {
	r, ok := f.reports[id]
	if !ok {
		return nil, NewBusinessError("REPORT_NOT_FOUND", "Report not found", ErrReportNotFound)
	}
	return &r, nil
}

func (f *fakeReportFlow) List(ctx context.Context, req *dto.ListReportsRequest) ([]dto.ReportDTO, error) {
	out := make([]dto.ReportDTO, 0, len(f.reports))
	for _, r := range f.reports {
		out = append(out, r)
	}
	return out, nil
}
