// Package order_repo implements the order store adapter on Postgres.
package order_repo

import (
	"context"
	"errors"
	"fmt"

	"ecomm-gateway/internal/controller/apperror"
	"ecomm-gateway/internal/domain/payment"
	"ecomm-gateway/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// PgOrderStore is the Postgres-backed order store.
type PgOrderStore struct {
	repo
}

var _ payment.OrderStore = (*PgOrderStore)(nil)

func NewPgOrderStore(pg *postgres.Postgres) *PgOrderStore {
	return &PgOrderStore{
		repo: repo{db: pg.Pool, builder: pg.Builder},
	}
}

type repo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func (r *repo) GetOrder(ctx context.Context, orderID string) (payment.Order, error) {
	sql, args, err := r.builder.
		Select("id", "amount", "currency", "status", "transaction_id", "note", "created_at", "updated_at").
		From("orders").
		Where(squirrel.Eq{"id": orderID}).
		ToSql()
	if err != nil {
		return payment.Order{}, fmt.Errorf("build select query: %w", err)
	}

	row := r.db.QueryRow(ctx, sql, args...)

	order, err := parseOrderRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payment.Order{}, apperror.ErrOrderNotFound
		}
		return payment.Order{}, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

// FindOrderIDByTransactionID resolves the unique transaction-id index.
func (r *repo) FindOrderIDByTransactionID(ctx context.Context, transID string) (string, error) {
	sql, args, err := r.builder.
		Select("id").
		From("orders").
		Where(squirrel.Eq{"transaction_id": transID}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build select query: %w", err)
	}

	var orderID string
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&orderID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperror.ErrUnknownTransaction
		}
		return "", fmt.Errorf("find order by transaction id: %w", err)
	}
	return orderID, nil
}

// AttachTransactionID is a set-if-null write; the first Initiate wins and
// every later attempt gets ErrAlreadyInitiated.
func (r *repo) AttachTransactionID(ctx context.Context, orderID, transID string) error {
	sql, args, err := r.builder.Update("orders").
		Set("transaction_id", transID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": orderID}).
		Where("transaction_id IS NULL").
		ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("attach transaction id: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	// No row updated: either the order does not exist or the id is
	// already attached.
	if _, err := r.GetOrder(ctx, orderID); err != nil {
		return err
	}
	return apperror.ErrAlreadyInitiated
}

// MarkFailed transitions the order to failed and appends the note to the
// order's note trail. A completed order is never demoted; a concurrent
// settle winning the race makes this a no-op.
func (r *repo) MarkFailed(ctx context.Context, orderID, note string) error {
	sql, args, err := r.builder.Update("orders").
		Set("status", payment.StatusFailed).
		Set("note", appendNote(note)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": orderID}).
		Where(squirrel.NotEq{"status": payment.StatusCompleted}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("mark order failed: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	if _, err := r.GetOrder(ctx, orderID); err != nil {
		return err
	}
	return nil
}

// Settle transitions the order to completed with a compare-and-swap on
// the current status. Returns false without error when the order is
// already completed, so replayed callbacks stay idempotent.
func (r *repo) Settle(ctx context.Context, orderID, note string) (bool, error) {
	sql, args, err := r.builder.Update("orders").
		Set("status", payment.StatusCompleted).
		Set("note", appendNote(note)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": orderID}).
		Where(squirrel.NotEq{"status": []payment.Status{payment.StatusCompleted, payment.StatusFailed}}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build update query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, fmt.Errorf("settle order: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return true, nil
	}

	order, err := r.GetOrder(ctx, orderID)
	if err != nil {
		return false, err
	}
	if order.Status == payment.StatusCompleted {
		return false, nil
	}
	return false, fmt.Errorf("order %s in status %s: %w", orderID, order.Status, apperror.ErrOrderNotStartable)
}

// appendNote builds the note-trail expression: existing notes are kept,
// new ones go on their own line.
func appendNote(note string) squirrel.Sqlizer {
	return squirrel.Expr("COALESCE(note || E'\\n', '') || ?", note)
}
