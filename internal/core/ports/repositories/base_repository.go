package repositories

import (
	"context"
)

// TxFunc is a unit of work. The provider passed in is bound to the transaction.
type TxFunc func(ctx context.Context, repos RepositoryProvider) error

// TransactionManager runs units of work atomically.
type TransactionManager interface {
	// WithTx runs fn inside a single storage transaction. The transaction commits
	// when fn returns nil and rolls back otherwise. A WithTx call made with a ctx
	// that already carries a transaction joins it instead of opening a new one.
	WithTx(ctx context.Context, fn TxFunc) error
}
