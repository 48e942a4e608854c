package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/racional/racional-backend/internal/model"
)

// TransactionRepository provides data access methods for the transaction table.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository with the provided database connection.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// InsertTransaction writes a new transaction row.
func (s *TransactionRepository) InsertTransaction(ctx context.Context, transaction *model.Transaction) error {
	query := `
		INSERT INTO "transaction" (id, user_id, type, amount, status, description, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		transaction.ID, transaction.UserID, transaction.Type,
		transaction.Amount.String(), transaction.Status, transaction.Description,
		FormatTime(transaction.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// GetTransactionsOnUserID retrieves all transactions for a user, newest first.
// Returns an empty slice when the user has no transactions.
func (s *TransactionRepository) GetTransactionsOnUserID(ctx context.Context, userID string) ([]model.Transaction, error) {
	query := `
		SELECT id, user_id, type, amount, status, description, created_at
		FROM "transaction"
		WHERE user_id = ?
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction table: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}

	for rows.Next() {
		var t model.Transaction
		var amountStr, createdAtStr string

		err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.Type,
			&amountStr,
			&t.Status,
			&t.Description,
			&createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction table results: %w", err)
		}

		t.Amount, err = ParseDecimal(amountStr)
		if err != nil {
			return nil, err
		}

		t.CreatedAt, err = ParseTime(createdAtStr)
		if err != nil {
			return nil, err
		}

		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction table: %w", err)
	}

	return transactions, nil
}
