package order_repo

import (
	"fmt"

	"ecomm-gateway/internal/domain/payment"

	"github.com/jackc/pgx/v5"
)

func parseOrderRow(row pgx.Row) (payment.Order, error) {
	var (
		o         payment.Order
		rawStatus string
	)

	err := row.Scan(&o.ID, &o.Amount, &o.Currency, &rawStatus, &o.TransactionID, &o.Note, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return payment.Order{}, err
	}

	status, err := payment.NewStatus(rawStatus)
	if err != nil {
		return payment.Order{}, fmt.Errorf("invalid status in database: %w", err)
	}
	o.Status = status

	return o, nil
}
