package pgsql

import (
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
)

// NewRepositoryProvider binds every repository to db, which may be the pool or an open transaction.
func NewRepositoryProvider(db DBTX) portsrepo.RepositoryProvider {
	base := BaseRepository{DB: db}
	return portsrepo.RepositoryProvider{
		BusinessRepo:      &PgxBusinessRepository{BaseRepository: base},
		AccountRepo:       &PgxAccountRepository{BaseRepository: base},
		FinancialYearRepo: &PgxFinancialYearRepository{BaseRepository: base},
		JournalRepo:       &PgxJournalRepository{BaseRepository: base},
		LedgerRepo:        &PgxLedgerRepository{BaseRepository: base},
		BankAccountRepo:   &PgxBankAccountRepository{BaseRepository: base},
	}
}
