package checkout_repo

import (
	"MercadoPagoBridge/internal/domain/checkout"

	"github.com/jackc/pgx/v5"
)

func parseCartRow(row pgx.Row) (Cart, error) {
	var cart Cart
	err := row.Scan(&cart.ID,
		&cart.Type,
		&cart.CurrencyCode,
		&cart.FirstName,
		&cart.LastName,
		&cart.Email,
		&cart.PaymentAuthorizedAt,
		&cart.CompletedAt,
		&cart.CreatedAt,
		&cart.UpdatedAt)
	return cart, err
}

func parseLineItemRows(rows pgx.Rows) ([]checkout.LineItem, error) {
	defer rows.Close()

	var items []checkout.LineItem
	for rows.Next() {
		var item checkout.LineItem
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func parseSessionRow(row pgx.Row) (checkout.PaymentSession, error) {
	var session PaymentSession
	err := row.Scan(&session.CartID,
		&session.ProviderID,
		&session.IsSelected,
		&session.Status,
		&session.Data,
		&session.UpdatedAt)
	if err != nil {
		return checkout.PaymentSession{}, err
	}
	return session.toDomain()
}
