// Package businessflow contains the core business logic and use cases for derived statistics
package businessflow

import (
	"context"

	"github.com/CoriMyp/bot-bugalter/app/dto"
	"github.com/CoriMyp/bot-bugalter/ledger"
	"github.com/CoriMyp/bot-bugalter/models"
	"github.com/CoriMyp/bot-bugalter/repository"
	"github.com/CoriMyp/bot-bugalter/utils"
)

// StatsFlow defines operations for balance derivation and period aggregation
type StatsFlow interface {
	Aggregate(ctx context.Context, req *dto.AggregateRequest) (*dto.AggregateResponse, error)
	Windows(ctx context.Context, scope string, scopeID int64) (*dto.StatsWindowsDTO, bool, error)
	BalanceOverview(ctx context.Context) (*dto.BalanceOverviewResponse, error)
	CountryBalance(ctx context.Context, countryID uint) (*dto.CountryBalanceDTO, error)
	BookmakerBalances(ctx context.Context, countryID uint) ([]dto.BookmakerBalanceDTO, error)
	WalletBalances(ctx context.Context, category string) ([]dto.WalletBalanceDTO, error)
	EmployeeBalances(ctx context.Context) ([]dto.EmployeeBalanceDTO, error)
	EmployeeBalance(ctx context.Context, employeeID int64) (*dto.EmployeeBalanceDTO, error)
}

// StatsFlowImpl implements StatsFlow
type StatsFlowImpl struct {
	countryRepo     repository.CountryRepository
	bookmakerRepo   repository.BookmakerRepository
	walletRepo      repository.WalletRepository
	employeeRepo    repository.EmployeeRepository
	sourceRepo      repository.SourceRepository
	reportRepo      repository.ReportRepository
	transactionRepo repository.TransactionRepository
}

// NewStatsFlow constructs a StatsFlow
func NewStatsFlow(
	countryRepo repository.CountryRepository,
	bookmakerRepo repository.BookmakerRepository,
	walletRepo repository.WalletRepository,
	employeeRepo repository.EmployeeRepository,
	sourceRepo repository.SourceRepository,
	reportRepo repository.ReportRepository,
	transactionRepo repository.TransactionRepository,
) StatsFlow {
	return &StatsFlowImpl{
		countryRepo:     countryRepo,
		bookmakerRepo:   bookmakerRepo,
		walletRepo:      walletRepo,
		employeeRepo:    employeeRepo,
		sourceRepo:      sourceRepo,
		reportRepo:      reportRepo,
		transactionRepo: transactionRepo,
	}
}

// loadScope fetches the live report and transaction rows for one scope.
// Transactions only participate in country and global aggregations.
// notFound is set when the scope entity does not resolve.
func (f *StatsFlowImpl) loadScope(ctx context.Context, scope string, scopeID int64) (reports []models.Report, transactions []models.Transaction, notFound bool, err error) {
	switch scope {
	case dto.ScopeGlobal:
		rs, err := f.reportRepo.ByFilter(ctx, models.ReportFilter{})
		if err != nil {
			return nil, nil, false, err
		}
		ts, err := f.transactionRepo.ByFilter(ctx, models.TransactionFilter{})
		if err != nil {
			return nil, nil, false, err
		}
		return deref(rs), deref(ts), false, nil

	case dto.ScopeCountry:
		country, err := f.countryRepo.ByID(ctx, uint(scopeID))
		if err != nil {
			return nil, nil, false, err
		}
		if country == nil {
			return nil, nil, true, nil
		}
		rs, err := f.reportRepo.ListByCountry(ctx, country.ID)
		if err != nil {
			return nil, nil, false, err
		}
		ts, err := f.transactionRepo.ListByCountry(ctx, country.ID)
		if err != nil {
			return nil, nil, false, err
		}
		return deref(rs), deref(ts), false, nil

	case dto.ScopeBookmaker:
		bookmaker, err := f.bookmakerRepo.ByID(ctx, uint(scopeID))
		if err != nil {
			return nil, nil, false, err
		}
		if bookmaker == nil {
			return nil, nil, true, nil
		}
		rs, err := f.reportRepo.ListByBookmaker(ctx, bookmaker.ID)
		if err != nil {
			return nil, nil, false, err
		}
		return deref(rs), nil, false, nil

	case dto.ScopeSource:
		source, err := f.sourceRepo.ByID(ctx, uint(scopeID))
		if err != nil {
			return nil, nil, false, err
		}
		if source == nil {
			return nil, nil, true, nil
		}
		rs, err := f.reportRepo.ListBySource(ctx, source.ID)
		if err != nil {
			return nil, nil, false, err
		}
		return deref(rs), nil, false, nil

	case dto.ScopeEmployee:
		employee, err := f.employeeRepo.ByID(ctx, scopeID)
		if err != nil {
			return nil, nil, false, err
		}
		if employee == nil {
			return nil, nil, true, nil
		}
		rs, err := f.reportRepo.ListByEmployee(ctx, employee.ID)
		if err != nil {
			return nil, nil, false, err
		}
		return deref(rs), nil, false, nil

	default:
		return nil, nil, false, NewBusinessErrorf("UNKNOWN_SCOPE", "Unknown aggregation scope %q", ErrUnknownScope, scope)
	}
}

// Aggregate computes the totals for one scope over an inclusive date
// range. A missing scope entity yields NotFound with zeroed totals; an
// entity with no records in range yields plain zeros.
func (f *StatsFlowImpl) Aggregate(ctx context.Context, req *dto.AggregateRequest) (*dto.AggregateResponse, error) {
	period, err := periodFromRequest(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	reports, transactions, notFound, err := f.loadScope(ctx, req.Scope, req.ScopeID)
	if err != nil {
		return nil, err
	}
	if notFound {
		return &dto.AggregateResponse{NotFound: true}, nil
	}

	totals := ledger.Aggregate(reports, transactions, period)
	return &dto.AggregateResponse{Totals: ToTotalsDTO(totals)}, nil
}

// Windows computes the four rolling windows for one scope. The second
// return reports whether the scope entity resolved.
func (f *StatsFlowImpl) Windows(ctx context.Context, scope string, scopeID int64) (*dto.StatsWindowsDTO, bool, error) {
	reports, transactions, notFound, err := f.loadScope(ctx, scope, scopeID)
	if err != nil {
		return nil, false, err
	}
	if notFound {
		return nil, true, nil
	}

	windows := ledger.AggregateWindows(reports, transactions, utils.UTCNow())
	out := ToWindowsDTO(windows)
	return &out, false, nil
}

func (f *StatsFlowImpl) walletLedger(ctx context.Context, w models.Wallet) (ledger.WalletLedger, error) {
	incoming, outgoing, err := f.transactionRepo.ListByWallet(ctx, w.ID)
	if err != nil {
		return ledger.WalletLedger{}, err
	}
	return ledger.WalletLedger{
		Wallet:   w,
		Incoming: deref(incoming),
		Outgoing: deref(outgoing),
	}, nil
}

func (f *StatsFlowImpl) bookmakerLedger(ctx context.Context, b models.Bookmaker) (ledger.BookmakerLedger, error) {
	sent, received, err := f.transactionRepo.ListByBookmaker(ctx, b.ID)
	if err != nil {
		return ledger.BookmakerLedger{}, err
	}
	reports, err := f.reportRepo.ListByBookmaker(ctx, b.ID)
	if err != nil {
		return ledger.BookmakerLedger{}, err
	}
	return ledger.BookmakerLedger{
		Bookmaker: b,
		Sent:      deref(sent),
		Received:  deref(received),
		Reports:   deref(reports),
	}, nil
}

func (f *StatsFlowImpl) countryLedger(ctx context.Context, country models.Country) (ledger.CountryLedger, error) {
	graph := ledger.CountryLedger{Country: country}

	bookmakers, err := f.bookmakerRepo.ListByCountry(ctx, country.ID)
	if err != nil {
		return graph, err
	}
	for _, b := range bookmakers {
		bl, err := f.bookmakerLedger(ctx, *b)
		if err != nil {
			return graph, err
		}
		graph.Bookmakers = append(graph.Bookmakers, bl)
	}

	wallets, err := f.walletRepo.ListByCountry(ctx, country.ID)
	if err != nil {
		return graph, err
	}
	for _, w := range wallets {
		wl, err := f.walletLedger(ctx, *w)
		if err != nil {
			return graph, err
		}
		graph.Wallets = append(graph.Wallets, wl)
	}

	return graph, nil
}

// BalanceOverview derives the whole-operation position: every country's
// active and passive balances plus the general wallet pool.
func (f *StatsFlowImpl) BalanceOverview(ctx context.Context) (*dto.BalanceOverviewResponse, error) {
	countries, err := f.countryRepo.ListLive(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.BalanceOverviewResponse{
		Countries:      make([]dto.CountryBalanceDTO, 0, len(countries)),
		GeneralWallets: []dto.WalletBalanceDTO{},
	}

	for _, country := range countries {
		graph, err := f.countryLedger(ctx, *country)
		if err != nil {
			return nil, err
		}
		active := graph.ActiveBalance()
		passive := graph.Balance()
		resp.Countries = append(resp.Countries, dto.CountryBalanceDTO{
			ID:             country.ID,
			Name:           country.Name,
			Flag:           country.Flag,
			Commission:     country.Commission,
			ActiveBalance:  active,
			PassiveBalance: passive,
		})
		resp.ActiveTotal += active
		resp.PassiveTotal += passive
	}

	general, err := f.walletRepo.ListByCategory(ctx, models.WalletCategoryGeneral)
	if err != nil {
		return nil, err
	}
	for _, w := range general {
		wl, err := f.walletLedger(ctx, *w)
		if err != nil {
			return nil, err
		}
		balance := wl.Balance()
		resp.GeneralWallets = append(resp.GeneralWallets, dto.WalletBalanceDTO{
			ID:       w.ID,
			Name:     w.Name,
			Category: w.Category,
			Balance:  balance,
		})
		resp.ActiveTotal += balance
	}

	return resp, nil
}

// CountryBalance derives one country's position
func (f *StatsFlowImpl) CountryBalance(ctx context.Context, countryID uint) (*dto.CountryBalanceDTO, error) {
	country, err := f.countryRepo.ByID(ctx, countryID)
	if err != nil {
		return nil, err
	}
	if country == nil {
		return nil, NewBusinessError("COUNTRY_NOT_FOUND", "Country not found", ErrCountryNotFound)
	}

	graph, err := f.countryLedger(ctx, *country)
	if err != nil {
		return nil, err
	}

	return &dto.CountryBalanceDTO{
		ID:             country.ID,
		Name:           country.Name,
		Flag:           country.Flag,
		Commission:     country.Commission,
		ActiveBalance:  graph.ActiveBalance(),
		PassiveBalance: graph.Balance(),
	}, nil
}

// BookmakerBalances derives the positions of every live bookmaker under
// a country.
func (f *StatsFlowImpl) BookmakerBalances(ctx context.Context, countryID uint) ([]dto.BookmakerBalanceDTO, error) {
	country, err := f.countryRepo.ByID(ctx, countryID)
	if err != nil {
		return nil, err
	}
	if country == nil {
		return nil, NewBusinessError("COUNTRY_NOT_FOUND", "Country not found", ErrCountryNotFound)
	}

	bookmakers, err := f.bookmakerRepo.ListByCountry(ctx, countryID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookmakerBalanceDTO, 0, len(bookmakers))
	for _, b := range bookmakers {
		bl, err := f.bookmakerLedger(ctx, *b)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.BookmakerBalanceDTO{
			ID:          b.ID,
			Name:        b.Name,
			DisplayName: b.DisplayName,
			CountryID:   b.CountryID,
			IsActive:    b.IsActive,
			Deposit:     bl.Deposit(),
			Balance:     bl.Balance(),
		})
	}
	return out, nil
}

// WalletBalances derives the positions of live wallets, optionally
// narrowed to one category.
func (f *StatsFlowImpl) WalletBalances(ctx context.Context, category string) ([]dto.WalletBalanceDTO, error) {
	var wallets []*models.Wallet
	var err error
	if category == "" {
		wallets, err = f.walletRepo.ListLive(ctx)
	} else {
		wallets, err = f.walletRepo.ListByCategory(ctx, category)
	}
	if err != nil {
		return nil, err
	}

	out := make([]dto.WalletBalanceDTO, 0, len(wallets))
	for _, w := range wallets {
		wl, err := f.walletLedger(ctx, *w)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.WalletBalanceDTO{
			ID:       w.ID,
			Name:     w.Name,
			Category: w.Category,
			Balance:  wl.Balance(),
		})
	}
	return out, nil
}

// EmployeeBalances derives every employee's salary, penalty and balance
func (f *StatsFlowImpl) EmployeeBalances(ctx context.Context) ([]dto.EmployeeBalanceDTO, error) {
	employees, err := f.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.EmployeeBalanceDTO, 0, len(employees))
	for _, e := range employees {
		balance, err := f.employeeBalance(ctx, *e)
		if err != nil {
			return nil, err
		}
		out = append(out, balance)
	}
	return out, nil
}

// EmployeeBalance derives one employee's position
func (f *StatsFlowImpl) EmployeeBalance(ctx context.Context, employeeID int64) (*dto.EmployeeBalanceDTO, error) {
	employee, err := f.employeeRepo.ByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, NewBusinessError("EMPLOYEE_NOT_FOUND", "Employee not found", ErrEmployeeNotFound)
	}

	balance, err := f.employeeBalance(ctx, *employee)
	if err != nil {
		return nil, err
	}
	return &balance, nil
}

func (f *StatsFlowImpl) employeeBalance(ctx context.Context, e models.Employee) (dto.EmployeeBalanceDTO, error) {
	reportsPtr, err := f.reportRepo.ListByEmployee(ctx, e.ID)
	if err != nil {
		return dto.EmployeeBalanceDTO{}, err
	}
	reports := deref(reportsPtr)

	salary := ledger.EmployeeSalary(reports)
	penalty := ledger.EmployeePenalty(reports)
	return dto.EmployeeBalanceDTO{
		ID:         e.ID,
		Name:       e.Name,
		Username:   e.Username,
		Salary:     salary,
		Penalty:    penalty,
		Adjustment: e.Adjustment,
		Balance:    ledger.EmployeeBalance(e, reports),
	}, nil
}

// periodFromRequest builds the aggregation window from the raw
// inclusive date strings. Empty strings leave a bound open.
func periodFromRequest(startDate, endDate string) (ledger.Period, error) {
	if startDate == "" && endDate == "" {
		return ledger.AllTime(), nil
	}

	if startDate != "" && endDate != "" {
		start, err := utils.ParseDate(startDate)
		if err != nil {
			return ledger.Period{}, NewBusinessError("INVALID_DATE", "Start date is not parsable", err)
		}
		end, err := utils.ParseDate(endDate)
		if err != nil {
			return ledger.Period{}, NewBusinessError("INVALID_DATE", "End date is not parsable", err)
		}
		if end.Before(start) {
			return ledger.Period{}, NewBusinessError("INVALID_PERIOD", "Start date is after end date", ErrStartDateAfterEndDate)
		}
		return ledger.Between(start, end), nil
	}

	if startDate != "" {
		start, err := utils.ParseDate(startDate)
		if err != nil {
			return ledger.Period{}, NewBusinessError("INVALID_DATE", "Start date is not parsable", err)
		}
		return ledger.Since(start), nil
	}

	end, err := utils.ParseDate(endDate)
	if err != nil {
		return ledger.Period{}, NewBusinessError("INVALID_DATE", "End date is not parsable", err)
	}
	return ledger.Through(end), nil
}
