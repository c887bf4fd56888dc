package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// Storage drivers hand out one bound to the pool and, inside WithTx, one bound
// to the open transaction.
type RepositoryProvider struct {
	BusinessRepo      BusinessRepositoryFacade
	AccountRepo       AccountRepositoryFacade
	FinancialYearRepo FinancialYearRepositoryFacade
	JournalRepo       JournalRepositoryFacade
	LedgerRepo        LedgerReader
	BankAccountRepo   BankAccountRepositoryFacade
}
