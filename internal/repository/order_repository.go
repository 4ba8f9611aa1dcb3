package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yerzhan-a/charter-market/internal/model"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// ListByUser returns every order the user participates in, on either side of
// the deal, newest first.
func (r *OrderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			partner_id,
			order_number,
			order_date,
			aircraft_type,
			flight_number,
			departure_date,
			departure_city,
			departure_airport,
			departure_cargo_type,
			departure_cargo_weight,
			departure_cargo_volume,
			arrival_date,
			arrival_city,
			arrival_airport,
			arrival_cargo_type,
			arrival_cargo_weight,
			arrival_cargo_volume,
			round_trip,
			price,
			currency,
			payment_status,
			contract_id,
			order_status,
			empty_leg_match
		FROM orders
		WHERE user_id = ? OR partner_id = ?
		ORDER BY order_date DESC, id DESC
	`, userID, userID).Scan(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
