package services

import (
	"time"

	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
)

type containerOptions struct {
	clock             func() time.Time
	balanceWorkers    int
	referenceAttempts int
}

// ContainerOption is a functional option for configuring the services
type ContainerOption func(*containerOptions)

// WithClock replaces time.Now for every service. Tests use it to pin audit stamps.
func WithClock(clock func() time.Time) ContainerOption {
	return func(o *containerOptions) {
		o.clock = clock
	}
}

// WithBalanceWorkers bounds how many bank balances are computed at once.
func WithBalanceWorkers(n int) ContainerOption {
	return func(o *containerOptions) {
		if n > 0 {
			o.balanceWorkers = n
		}
	}
}

// WithReferenceAttempts bounds how many generated journal references are tried
// before creation fails with a duplicate error.
func WithReferenceAttempts(n int) ContainerOption {
	return func(o *containerOptions) {
		if n > 0 {
			o.referenceAttempts = n
		}
	}
}

// NewServiceContainer creates a new service container with properly initialized dependencies.
// repos is the provider bound to the connection pool; txm opens transactions on the same store.
func NewServiceContainer(repos portsrepo.RepositoryProvider, txm portsrepo.TransactionManager, options ...ContainerOption) *portssvc.ServiceContainer {
	opts := containerOptions{balanceWorkers: 8, referenceAttempts: 100}
	for _, option := range options {
		option(&opts)
	}
	base := newBaseService(repos, txm, opts.clock)

	container := &portssvc.ServiceContainer{}
	container.Business = NewBusinessService(base)
	container.Account = NewAccountService(base)
	container.Ledger = NewLedgerService(base)
	container.FinancialYear = NewFinancialYearService(base)

	journal := NewJournalService(base, opts.referenceAttempts)
	container.Journal = journal
	container.BankAccount = NewBankAccountService(base, journal, opts.balanceWorkers)
	container.Reporting = NewReportingService(base)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.BusinessSvcFacade      = (*businessService)(nil)
	_ portssvc.AccountSvcFacade       = (*accountService)(nil)
	_ portssvc.LedgerSvc              = (*ledgerService)(nil)
	_ portssvc.FinancialYearSvcFacade = (*financialYearService)(nil)
	_ portssvc.JournalSvcFacade       = (*journalService)(nil)
	_ portssvc.BankAccountSvcFacade   = (*bankAccountService)(nil)
	_ portssvc.ReportingService       = (*reportingService)(nil)
)
