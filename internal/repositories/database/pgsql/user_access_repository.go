package pgsql

import (
	"context"
	"fmt"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrack/fintrack_backend/internal/core/ports/repositories"
	"github.com/fintrack/fintrack_backend/internal/models"
	"github.com/fintrack/fintrack_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserAccessRepository struct {
	BaseRepository
}

func newPgxUserAccessRepository(pool *pgxpool.Pool) portsrepo.UserAccessRepository {
	return &PgxUserAccessRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UserAccessRepository = (*PgxUserAccessRepository)(nil)

// SaveAccess appends one authentication attempt to the audit log.
func (r *PgxUserAccessRepository) SaveAccess(ctx context.Context, access domain.UserAccess) error {
	query := `
		INSERT INTO user_accesses (access_id, user_id, ip_address, user_agent, access_type, success, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		access.AccessID,
		access.UserID,
		access.IPAddress,
		access.UserAgent,
		string(access.Type),
		access.Success,
		access.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save access record for user %s: %w", access.UserID, err)
	}
	return nil
}

// CountSuccessfulAccesses returns how many successful attempts the user has.
func (r *PgxUserAccessRepository) CountSuccessfulAccesses(ctx context.Context, userID string) (int, error) {
	query := `SELECT COUNT(*) FROM user_accesses WHERE user_id = $1 AND success = TRUE;`

	var count int
	if err := r.Pool.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count accesses for user %s: %w", userID, err)
	}
	return count, nil
}

// ListAccessesByUserID returns the user's most recent access records.
func (r *PgxUserAccessRepository) ListAccessesByUserID(ctx context.Context, userID string, limit int) ([]domain.UserAccess, error) {
	query := `
		SELECT access_id, user_id, ip_address, user_agent, access_type, success, created_at
		FROM user_accesses
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query accesses for user %s: %w", userID, err)
	}
	defer rows.Close()

	accesses := []domain.UserAccess{}
	for rows.Next() {
		var m models.UserAccess
		if err := rows.Scan(
			&m.AccessID,
			&m.UserID,
			&m.IPAddress,
			&m.UserAgent,
			&m.Type,
			&m.Success,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan access row: %w", err)
		}
		accesses = append(accesses, mapping.ToDomainUserAccess(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating access rows: %w", rows.Err())
	}

	return accesses, nil
}
