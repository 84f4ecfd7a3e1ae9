package pgsql

import (
	portsrepo "github.com/fintrack/fintrack_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryProvider bundles every repository implementation behind its port.
type RepositoryProvider struct {
	UserRepo        portsrepo.UserRepository
	UserAccessRepo  portsrepo.UserAccessRepository
	AccountRepo     portsrepo.AccountRepository
	TransactionRepo portsrepo.TransactionRepository
}

// NewRepositoryProvider wires all pgx-backed repositories onto one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *RepositoryProvider {
	return &RepositoryProvider{
		UserRepo:        newPgxUserRepository(pool),
		UserAccessRepo:  newPgxUserAccessRepository(pool),
		AccountRepo:     newPgxAccountRepository(pool),
		TransactionRepo: newPgxTransactionRepository(pool),
	}
}
