package repository

import "context"

// TxManager runs a function inside a single storage transaction. Every
// read-derive-write sequence over financial state goes through it so that a
// failure partway leaves no partial state visible.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
