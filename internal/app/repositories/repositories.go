package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is satisfied by both *pgxpool.Pool and pgx.Tx, so the same
// repository SQL runs directly on the pool or inside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories bundles all repositories sharing one pool
type Repositories struct {
	User      *UserRepository
	Profile   *ProfileRepository
	Committee *CommitteeRepository
	Content   *ContentRepository
}

// NewRepositories creates the repository container
func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:      NewUserRepository(pool),
		Profile:   NewProfileRepository(pool),
		Committee: NewCommitteeRepository(pool),
		Content:   NewContentRepository(pool),
	}
}
