package services

import "context"

// Transactor runs a function inside one storage transaction.
//
// Repository calls made with the context handed to fn take part in the transaction;
// when fn returns an error nothing it wrote is kept.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
