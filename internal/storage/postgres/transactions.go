package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/mmynk/qattah/internal/models"
	"github.com/mmynk/qattah/internal/storage"
)

// amount travels as text in both directions so NUMERIC never passes through float64.
const selectTransaction = "SELECT id, amount::text, category, date, title, user_id, is_paid, came_from FROM transactions"

func (s *Store) PutTransaction(ctx context.Context, tx *models.Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}

	var cameFrom *string
	if tx.CameFrom != "" {
		cameFrom = &tx.CameFrom
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO transactions (id, amount, category, date, title, user_id, is_paid, came_from)
		 VALUES ($1, $2::numeric, $3, $4, $5, $6, $7, $8)`,
		tx.ID, tx.Amount.String(), tx.Category, tx.Date, tx.Title, tx.UserID, tx.IsPaid, cameFrom,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

func (s *Store) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	tx, err := scanTransaction(s.pool.QueryRow(ctx, selectTransaction+" WHERE id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("transaction %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return tx, nil
}

func (s *Store) MarkPaid(ctx context.Context, id, userID string) error {
	tag, err := s.pool.Exec(ctx,
		"UPDATE transactions SET is_paid = TRUE WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return fmt.Errorf("mark transaction paid: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var owner string
	err = s.pool.QueryRow(ctx, "SELECT user_id FROM transactions WHERE id = $1", id).Scan(&owner)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("transaction %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("check transaction owner: %w", err)
	}
	return fmt.Errorf("transaction %s: %w", id, models.ErrUnauthorized)
}

func (s *Store) ScanTransactions(ctx context.Context, filter storage.TransactionFilter, page storage.PageRequest) (*storage.Page, error) {
	where, args := filterClause(filter, page.Token)
	limit := page.Size()
	args = append(args, limit+1)

	rows, err := s.pool.Query(ctx,
		fmt.Sprintf("%s%s ORDER BY id LIMIT $%d", selectTransaction, where, len(args)), args...)
	if err != nil {
		return nil, fmt.Errorf("scan transactions: %w", err)
	}
	defer rows.Close()

	result := &storage.Page{}
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		result.Items = append(result.Items, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}

	if len(result.Items) > limit {
		result.Items = result.Items[:limit]
		result.NextToken = result.Items[limit-1].ID
	}
	return result, nil
}

func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM transactions WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transaction %s: %w", id, models.ErrNotFound)
	}
	return nil
}

func filterClause(f storage.TransactionFilter, after string) (string, []any) {
	var conds []string
	var args []any

	add := func(column, op string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf("%s %s $%d", column, op, len(args)))
	}

	if f.UserID != "" {
		add("user_id", "=", f.UserID)
	}
	if f.CameFrom != "" {
		add("came_from", "=", f.CameFrom)
	}
	if f.Title != "" {
		add("title", "=", f.Title)
	}
	if f.Date != "" {
		add("date", "=", f.Date)
	}
	if f.DateFrom != "" {
		add("date", ">=", f.DateFrom)
	}
	if f.DateTo != "" {
		add("date", "<=", f.DateTo)
	}
	if after != "" {
		add("id", ">", after)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	tx := &models.Transaction{}
	var amount string
	var cameFrom *string

	if err := row.Scan(&tx.ID, &amount, &tx.Category, &tx.Date, &tx.Title, &tx.UserID, &tx.IsPaid, &cameFrom); err != nil {
		return nil, err
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid stored amount %q: %w", amount, err)
	}
	tx.Amount = d
	if cameFrom != nil {
		tx.CameFrom = *cameFrom
	}
	return tx, nil
}
