package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/qattah/internal/models"
	"github.com/mmynk/qattah/internal/storage"
)

const transactionColumns = "id, amount, category, date, title, user_id, is_paid, came_from"

// PutTransaction persists a new transaction to the database.
func (s *SQLiteStore) PutTransaction(ctx context.Context, tx *models.Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}

	var isPaid interface{} = nil
	if tx.IsPaid != nil {
		isPaid = *tx.IsPaid
	}
	var cameFrom interface{} = nil
	if tx.CameFrom != "" {
		cameFrom = tx.CameFrom
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO transactions (`+transactionColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		tx.ID, tx.Amount.String(), tx.Category, tx.Date, tx.Title, tx.UserID, isPaid, cameFrom,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// GetTransaction retrieves a transaction by ID.
func (s *SQLiteStore) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+transactionColumns+" FROM transactions WHERE id = ?", id)

	tx, err := scanTransaction(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("transaction %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return tx, nil
}

// MarkPaid sets is_paid when the record is owned by userID.
// The ownership check and the write are one statement; the follow-up read
// only classifies a miss.
func (s *SQLiteStore) MarkPaid(ctx context.Context, id, userID string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE transactions SET is_paid = 1 WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("failed to mark transaction paid: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected > 0 {
		return nil
	}

	var owner string
	err = s.db.QueryRowContext(ctx, "SELECT user_id FROM transactions WHERE id = ?", id).Scan(&owner)
	if err == sql.ErrNoRows {
		return fmt.Errorf("transaction %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to check transaction owner: %w", err)
	}
	return fmt.Errorf("transaction %s: %w", id, models.ErrUnauthorized)
}

// ScanTransactions returns one page of matching transactions ordered by ID.
// The continuation token is the last ID of the page.
func (s *SQLiteStore) ScanTransactions(ctx context.Context, filter storage.TransactionFilter, page storage.PageRequest) (*storage.Page, error) {
	where, args := filterClause(filter, page.Token)
	limit := page.Size()

	// Fetch one extra row to learn whether another page exists
	query := "SELECT " + transactionColumns + " FROM transactions" + where + " ORDER BY id LIMIT ?"
	args = append(args, limit+1)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}
	defer rows.Close()

	result := &storage.Page{}
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		result.Items = append(result.Items, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	if len(result.Items) > limit {
		result.Items = result.Items[:limit]
		result.NextToken = result.Items[limit-1].ID
	}

	return result, nil
}

// DeleteTransaction removes a transaction by ID.
func (s *SQLiteStore) DeleteTransaction(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM transactions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("transaction %s: %w", id, models.ErrNotFound)
	}
	return nil
}

// filterClause builds the WHERE clause for a scan, including the page cursor.
func filterClause(f storage.TransactionFilter, after string) (string, []interface{}) {
	var conds []string
	var args []interface{}

	add := func(cond string, arg interface{}) {
		conds = append(conds, cond)
		args = append(args, arg)
	}

	if f.UserID != "" {
		add("user_id = ?", f.UserID)
	}
	if f.CameFrom != "" {
		add("came_from = ?", f.CameFrom)
	}
	if f.Title != "" {
		add("title = ?", f.Title)
	}
	if f.Date != "" {
		add("date = ?", f.Date)
	}
	if f.DateFrom != "" {
		add("date >= ?", f.DateFrom)
	}
	if f.DateTo != "" {
		add("date <= ?", f.DateTo)
	}
	if after != "" {
		add("id > ?", after)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTransaction(row rowScanner) (*models.Transaction, error) {
	tx := &models.Transaction{}
	var amount string
	var isPaid sql.NullBool
	var cameFrom sql.NullString

	if err := row.Scan(&tx.ID, &amount, &tx.Category, &tx.Date, &tx.Title, &tx.UserID, &isPaid, &cameFrom); err != nil {
		return nil, err
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid stored amount %q: %w", amount, err)
	}
	tx.Amount = d

	if isPaid.Valid {
		tx.IsPaid = models.BoolPtr(isPaid.Bool)
	}
	if cameFrom.Valid {
		tx.CameFrom = cameFrom.String
	}

	return tx, nil
}
