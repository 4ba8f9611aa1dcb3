package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/yerzhan-a/charter-market/internal/model"
)

type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

// ListByUser returns contracts where the user acts as charterer or carrier.
func (r *ContractRepository) ListByUser(ctx context.Context, userID int64) ([]model.Contract, error) {
	var contracts []model.Contract
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, order_id, charterer_id, carrier_id, contract_date,
			effective_from, effective_to, status, file_url, terms_summary, created_at
		FROM contracts
		WHERE charterer_id = ? OR carrier_id = ?
		ORDER BY contract_date DESC, id DESC
	`, userID, userID).Scan(&contracts).Error
	if err != nil {
		return nil, err
	}
	return contracts, nil
}

// GetDocument loads a contract together with both parties and the underlying
// order, enough to render the printable agreement.
func (r *ContractRepository) GetDocument(ctx context.Context, contractID int64) (*model.ContractDocument, error) {
	var row struct {
		ID               int64
		OrderID          int64
		ChartererID      int64
		CarrierID        int64
		ContractDate     time.Time
		EffectiveFrom    time.Time
		EffectiveTo      *time.Time
		Status           model.ContractStatus
		FileURL          string
		TermsSummary     string
		CreatedAt        time.Time
		ChartererName    string
		ChartererCompany string
		ChartererEmail   string
		CarrierName      string
		CarrierCompany   string
		CarrierEmail     string
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.order_id,
			c.charterer_id,
			c.carrier_id,
			c.contract_date,
			c.effective_from,
			c.effective_to,
			c.status,
			c.file_url,
			c.terms_summary,
			c.created_at,
			charterer.full_name AS charterer_name,
			charterer.company AS charterer_company,
			charterer.email AS charterer_email,
			carrier.full_name AS carrier_name,
			carrier.company AS carrier_company,
			carrier.email AS carrier_email
		FROM contracts c
		JOIN users charterer ON charterer.id = c.charterer_id
		JOIN users carrier ON carrier.id = c.carrier_id
		WHERE c.id = ?
	`, contractID).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var order model.Order
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, user_id, partner_id, order_number, order_date, aircraft_type, flight_number,
			departure_date, departure_city, departure_airport, departure_cargo_type,
			departure_cargo_weight, departure_cargo_volume,
			arrival_date, arrival_city, arrival_airport, arrival_cargo_type,
			arrival_cargo_weight, arrival_cargo_volume,
			round_trip, price, currency, payment_status, contract_id, order_status, empty_leg_match
		FROM orders
		WHERE id = ?
	`, row.OrderID).Scan(&order).Error; err != nil {
		return nil, err
	}

	return &model.ContractDocument{
		Contract: model.Contract{
			ID:            row.ID,
			OrderID:       row.OrderID,
			ChartererID:   row.ChartererID,
			CarrierID:     row.CarrierID,
			ContractDate:  row.ContractDate,
			EffectiveFrom: row.EffectiveFrom,
			EffectiveTo:   row.EffectiveTo,
			Status:        row.Status,
			FileURL:       row.FileURL,
			TermsSummary:  row.TermsSummary,
			CreatedAt:     row.CreatedAt,
		},
		Order: order,
		Charterer: model.Party{
			ID:       row.ChartererID,
			FullName: row.ChartererName,
			Company:  row.ChartererCompany,
			Email:    row.ChartererEmail,
		},
		Carrier: model.Party{
			ID:       row.CarrierID,
			FullName: row.CarrierName,
			Company:  row.CarrierCompany,
			Email:    row.CarrierEmail,
		},
	}, nil
}
