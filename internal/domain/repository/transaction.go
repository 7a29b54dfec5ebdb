package repository

import "context"

// RepositoryFactory creates repository instances bound to a single
// transaction. Use cases receive it inside TransactionManager.Execute so every
// repository call in the callback shares one atomic unit.
type RepositoryFactory interface {
	UserRepo() UserRepository
	ProductRepo() ProductRepository
}

// TransactionManager runs a function within a single database transaction.
type TransactionManager interface {
	// Execute begins a transaction, invokes fn with a factory bound to it,
	// and commits on nil error or rolls back otherwise.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
