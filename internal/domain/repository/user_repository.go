package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"wings_inventory/internal/common"
	"wings_inventory/internal/domain/model"

	"github.com/google/uuid"
)

// UserRepository is the credential store. Username uniqueness is the
// table's UNIQUE constraint; callers never pre-check it.
type UserRepository interface {
	Create(ctx context.Context, username, hashedPassword string) (string, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	// Update renames and/or rotates the digest of the user named oldUsername.
	// An empty newUsername or newHashedPassword leaves that column as is.
	Update(ctx context.Context, oldUsername, newUsername, newHashedPassword string) error
	Delete(ctx context.Context, username string) error
	List(ctx context.Context) ([]model.UserSummary, error)
}

type pgUserRepository struct {
	db *sql.DB
}

func NewPgUserRepository(db *sql.DB) UserRepository {
	return &pgUserRepository{db: db}
}

func (r *pgUserRepository) Create(ctx context.Context, username, hashedPassword string) (string, error) {
	id := uuid.NewString()
	query := `INSERT INTO users (id, username, password) VALUES ($1, $2, $3)`
	_, err := r.db.ExecContext(ctx, query, id, username, hashedPassword)
	if err != nil {
		if isUniqueViolation(err) {
			return "", fmt.Errorf("pgUserRepository.Create: %w", common.ErrDuplicateUsername)
		}
		return "", common.StoreError("pgUserRepository.Create", err)
	}
	return id, nil
}

func (r *pgUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT id, username, password, created_at FROM users WHERE username = $1`
	user := &model.User{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.HashedPassword, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, common.StoreError("pgUserRepository.FindByUsername", err)
	}
	return user, nil
}

func (r *pgUserRepository) Update(ctx context.Context, oldUsername, newUsername, newHashedPassword string) error {
	query := `UPDATE users SET
	            username = COALESCE(NULLIF($1, ''), username),
	            password = COALESCE(NULLIF($2, ''), password)
	          WHERE username = $3`
	res, err := r.db.ExecContext(ctx, query, newUsername, newHashedPassword, oldUsername)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("pgUserRepository.Update: %w", common.ErrDuplicateUsername)
		}
		return common.StoreError("pgUserRepository.Update", err)
	}
	return requireAffected(res, "pgUserRepository.Update")
}

func (r *pgUserRepository) Delete(ctx context.Context, username string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE username = $1`, username)
	if err != nil {
		return common.StoreError("pgUserRepository.Delete", err)
	}
	return requireAffected(res, "pgUserRepository.Delete")
}

func (r *pgUserRepository) List(ctx context.Context) ([]model.UserSummary, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, username FROM users ORDER BY created_at, username`)
	if err != nil {
		return nil, common.StoreError("pgUserRepository.List", err)
	}
	defer rows.Close()

	users := []model.UserSummary{}
	for rows.Next() {
		var u model.UserSummary
		if err := rows.Scan(&u.ID, &u.Username); err != nil {
			return nil, common.StoreError("pgUserRepository.List", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, common.StoreError("pgUserRepository.List", err)
	}
	return users, nil
}
