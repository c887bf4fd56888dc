package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Business      BusinessSvcFacade
	Account       AccountSvcFacade
	Ledger        LedgerSvc
	FinancialYear FinancialYearSvcFacade
	Journal       JournalSvcFacade
	BankAccount   BankAccountSvcFacade
	Reporting     ReportingService
}
