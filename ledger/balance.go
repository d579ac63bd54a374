package ledger

import "github.com/CoriMyp/bot-bugalter/models"

// RealAmount is the transaction amount net of commission. A zero
// commission leaves the amount untouched.
func RealAmount(t models.Transaction) float64 {
	return t.Amount - t.Commission
}

// WalletBalance folds a wallet's full transaction history: base deposit,
// plus net incoming amounts, minus gross outgoing amounts, plus the
// manual adjustment. Source kinds are irrelevant to wallets.
func WalletBalance(w models.Wallet, incoming, outgoing []models.Transaction) float64 {
	balance := w.Deposit + w.Adjustment
	for _, t := range incoming {
		balance += RealAmount(t)
	}
	for _, t := range outgoing {
		balance -= t.Amount
	}
	return balance
}

// BookmakerDeposit is the capital currently injected into a bookmaker:
// deposit-kind inflows net of commission, minus deposit-kind outflows.
func BookmakerDeposit(sent, received []models.Transaction) float64 {
	var deposit float64
	for _, t := range sent {
		if t.SourceKind == models.SourceKindDeposit {
			deposit -= t.Amount
		}
	}
	for _, t := range received {
		if t.SourceKind == models.SourceKindDeposit {
			deposit += RealAmount(t)
		}
	}
	return deposit
}

// BookmakerBalance is the deposit plus accumulated report profit plus
// the net of balance-kind transactions.
func BookmakerBalance(sent, received []models.Transaction, reports []models.Report) float64 {
	balance := BookmakerDeposit(sent, received)
	for _, r := range reports {
		balance += RealProfit(r)
	}
	for _, t := range sent {
		if t.SourceKind == models.SourceKindBalance {
			balance -= t.Amount
		}
	}
	for _, t := range received {
		if t.SourceKind == models.SourceKindBalance {
			balance += RealAmount(t)
		}
	}
	return balance
}

// EmployeeSalary sums the salary of non-erroneous reports. Salary
// already resolves to zero for erroneous reports, so the fold is plain.
func EmployeeSalary(reports []models.Report) float64 {
	var total float64
	for _, r := range reports {
		total += Salary(r)
	}
	return total
}

// EmployeePenalty sums the penalties across all reports.
func EmployeePenalty(reports []models.Report) float64 {
	var total float64
	for _, r := range reports {
		total += Penalty(r)
	}
	return total
}

// EmployeeBalance is the manual adjustment plus earned salary minus
// accumulated penalties.
func EmployeeBalance(e models.Employee, reports []models.Report) float64 {
	return e.Adjustment + EmployeeSalary(reports) - EmployeePenalty(reports)
}

// WalletLedger is a wallet snapshot together with its live transaction
// history, assembled once per computation by the caller.
type WalletLedger struct {
	Wallet   models.Wallet
	Incoming []models.Transaction
	Outgoing []models.Transaction
}

func (l WalletLedger) Balance() float64 {
	return WalletBalance(l.Wallet, l.Incoming, l.Outgoing)
}

// BookmakerLedger is a bookmaker snapshot together with its live
// transactions and reports.
type BookmakerLedger struct {
	Bookmaker models.Bookmaker
	Sent      []models.Transaction
	Received  []models.Transaction
	Reports   []models.Report
}

func (l BookmakerLedger) Deposit() float64 {
	return BookmakerDeposit(l.Sent, l.Received)
}

func (l BookmakerLedger) Balance() float64 {
	return BookmakerBalance(l.Sent, l.Received, l.Reports)
}

// CountryLedger is the assembled graph for one country: every live
// bookmaker and wallet under it with their histories.
type CountryLedger struct {
	Country    models.Country
	Bookmakers []BookmakerLedger
	Wallets    []WalletLedger
}

// ActiveBalance is the money currently in play: the full balance of
// every live bookmaker (active or not) plus every live wallet.
func (l CountryLedger) ActiveBalance() float64 {
	var total float64
	for _, b := range l.Bookmakers {
		total += b.Balance()
	}
	for _, w := range l.Wallets {
		total += w.Balance()
	}
	return total
}

// Balance is the passive reference balance: deposits of currently
// active bookmakers only. Deactivated profiles drop out of this figure
// while still counting toward ActiveBalance.
func (l CountryLedger) Balance() float64 {
	var total float64
	for _, b := range l.Bookmakers {
		if b.Bookmaker.IsActive {
			total += b.Deposit()
		}
	}
	return total
}
