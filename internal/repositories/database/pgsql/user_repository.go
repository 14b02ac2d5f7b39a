package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/wallet_api/internal/apperrors"
	"github.com/SscSPs/wallet_api/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_api/internal/core/ports/repositories"
	"github.com/SscSPs/wallet_api/internal/models"
	"github.com/SscSPs/wallet_api/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const userColumns = `user_id, name, email, password_hash, created_at, created_by, last_updated_at, last_updated_by`

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(base BaseRepository) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: base}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func scanUser(row pgx.Row) (*domain.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Name,
		&m.Email,
		&m.PasswordHash,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.Name,
		m.Email,
		m.PasswordHash,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: email %s is already registered", apperrors.ErrDuplicate, m.Email)
		}
		return storeError(err, "failed to save user")
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	user, err := scanUser(r.Pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE user_id = $1;`, userID))
	if err != nil {
		return nil, storeError(err, fmt.Sprintf("failed to find user by ID %s", userID))
	}
	return user, nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	user, err := scanUser(r.Pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1);`, email))
	if err != nil {
		return nil, storeError(err, "failed to find user by email")
	}
	return user, nil
}
