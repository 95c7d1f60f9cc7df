package database

import "context"

// Transactor runs a function inside one storage transaction. Repository
// calls made with the context it passes to fn join that transaction.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error
}
