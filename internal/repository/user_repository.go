package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/racional/racional-backend/internal/apperrors"
	"github.com/racional/racional-backend/internal/model"
)

// UserRepository provides data access methods for the user table.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository with the provided database connection.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// InsertUser writes a new user row.
func (s *UserRepository) InsertUser(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO user (id, name, email, phone, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		user.ID, user.Name, user.Email, user.Phone, FormatTime(user.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// UpdateUser updates the provided fields of a user and returns the updated row.
// Returns apperrors.ErrRecordNotFound if the user does not exist.
func (s *UserRepository) UpdateUser(ctx context.Context, userID string, name, email, phone *string) (model.User, error) {
	var sets []string
	var args []any

	if name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *name)
	}
	if email != nil {
		sets = append(sets, "email = ?")
		args = append(args, *email)
	}
	if phone != nil {
		sets = append(sets, "phone = ?")
		args = append(args, *phone)
	}

	// An empty body still has to confirm the row exists.
	if len(sets) == 0 {
		return s.GetUserOnID(ctx, userID)
	}

	//#nosec G202 -- Safe: placeholders are generated programmatically, not from user input
	query := "UPDATE user SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, userID)

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return model.User{}, fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return model.User{}, apperrors.ErrRecordNotFound
	}

	return s.GetUserOnID(ctx, userID)
}

// GetUserOnID retrieves a single user by ID.
// Returns apperrors.ErrRecordNotFound if the user does not exist.
func (s *UserRepository) GetUserOnID(ctx context.Context, userID string) (model.User, error) {
	query := `
		SELECT id, name, email, phone, created_at
		FROM user
		WHERE id = ?
	`

	var u model.User
	var createdAtStr string

	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Phone,
		&createdAtStr,
	)
	if err == sql.ErrNoRows {
		return model.User{}, apperrors.ErrRecordNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to query user: %w", err)
	}

	u.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.User{}, err
	}

	return u, nil
}

// UserExists reports whether a user with the given ID exists.
func (s *UserRepository) UserExists(ctx context.Context, userID string) (bool, error) {
	var one int

	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM user WHERE id = ?", userID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query user existence: %w", err)
	}

	return true, nil
}
