package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yerzhan-a/charter-market/internal/excel"
	"github.com/yerzhan-a/charter-market/internal/model"
	"github.com/yerzhan-a/charter-market/internal/pdf"
)

type fakeOrderStore struct {
	orders []model.Order
}

func (f *fakeOrderStore) ListByUser(_ context.Context, userID int64) ([]model.Order, error) {
	var result []model.Order
	for _, order := range f.orders {
		if order.UserID == userID || order.PartnerID == userID {
			result = append(result, order)
		}
	}
	return result, nil
}

type fakeContractStore struct {
	contracts []model.Contract
	documents map[int64]*model.ContractDocument
}

func (f *fakeContractStore) ListByUser(_ context.Context, userID int64) ([]model.Contract, error) {
	var result []model.Contract
	for _, contract := range f.contracts {
		if contract.ChartererID == userID || contract.CarrierID == userID {
			result = append(result, contract)
		}
	}
	return result, nil
}

func (f *fakeContractStore) GetDocument(_ context.Context, contractID int64) (*model.ContractDocument, error) {
	doc, exists := f.documents[contractID]
	if !exists {
		return nil, gorm.ErrRecordNotFound
	}
	return doc, nil
}

func sampleOrder(id, owner, partner int64) model.Order {
	return model.Order{
		ID:                 id,
		UserID:             owner,
		PartnerID:          partner,
		OrderNumber:        1000 + id,
		OrderDate:          time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		AircraftType:       "B747-8F",
		FlightNumber:       "CM101",
		DepartureDate:      time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		DepartureCity:      "Frankfurt",
		DepartureAirport:   "FRA",
		DepartureCargoType: model.CargoGeneral,
		ArrivalDate:        time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC),
		ArrivalCity:        "Hong Kong",
		ArrivalAirport:     "HKG",
		ArrivalCargoType:   model.CargoGeneral,
		Price:              250000,
		Currency:           model.CurrencyUSD,
		PaymentStatus:      model.PaymentPending,
		OrderStatus:        "confirmed",
	}
}

func sampleDocument(contractID, charterer, carrier int64) *model.ContractDocument {
	return &model.ContractDocument{
		Contract: model.Contract{
			ID:            contractID,
			OrderID:       1,
			ChartererID:   charterer,
			CarrierID:     carrier,
			ContractDate:  time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
			EffectiveFrom: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
			Status:        model.ContractSigned,
			TermsSummary:  "Payment due within 14 days of delivery.",
		},
		Order:     sampleOrder(1, charterer, carrier),
		Charterer: model.Party{ID: charterer, FullName: "A B", Company: "C"},
		Carrier:   model.Party{ID: carrier, FullName: "D E", Company: "F"},
	}
}

func newTestCharterService(orders *fakeOrderStore, contracts *fakeContractStore) *CharterService {
	return NewCharterService(orders, contracts, excel.NewGenerator(), pdf.NewGenerator())
}

func TestOrders_OwnerAndPartnerSides(t *testing.T) {
	orders := &fakeOrderStore{orders: []model.Order{
		sampleOrder(1, 1, 2),
		sampleOrder(2, 2, 1),
		sampleOrder(3, 3, 4),
	}}
	svc := newTestCharterService(orders, &fakeContractStore{})

	result, err := svc.Orders(context.Background(), model.Principal{UserID: 1})
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestExportOrders(t *testing.T) {
	orders := &fakeOrderStore{orders: []model.Order{sampleOrder(1, 1, 2)}}
	svc := newTestCharterService(orders, &fakeContractStore{})

	result, err := svc.ExportOrders(context.Background(), model.Principal{UserID: 1, FullName: "A B"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Content)
	assert.Contains(t, result.FileName, "orders-1-")
	assert.Contains(t, result.FileName, ".xlsx")
}

func TestContractDocument_PartiesOnly(t *testing.T) {
	contracts := &fakeContractStore{
		documents: map[int64]*model.ContractDocument{7: sampleDocument(7, 1, 2)},
	}
	svc := newTestCharterService(&fakeOrderStore{}, contracts)
	ctx := context.Background()

	result, err := svc.ContractDocument(ctx, model.Principal{UserID: 1}, 7)
	require.NoError(t, err)
	assert.Equal(t, "contract-7.pdf", result.FileName)
	assert.NotEmpty(t, result.Content)

	_, err = svc.ContractDocument(ctx, model.Principal{UserID: 2}, 7)
	require.NoError(t, err)

	_, err = svc.ContractDocument(ctx, model.Principal{UserID: 3}, 7)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestContractDocument_NotFound(t *testing.T) {
	svc := newTestCharterService(&fakeOrderStore{}, &fakeContractStore{documents: map[int64]*model.ContractDocument{}})

	_, err := svc.ContractDocument(context.Background(), model.Principal{UserID: 1}, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}
