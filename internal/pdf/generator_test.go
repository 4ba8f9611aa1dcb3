package pdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yerzhan-a/charter-market/internal/model"
)

func testDocument() model.ContractDocument {
	effectiveTo := time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC)
	return model.ContractDocument{
		Contract: model.Contract{
			ID:            7,
			OrderID:       1,
			ChartererID:   1,
			CarrierID:     2,
			ContractDate:  time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
			EffectiveFrom: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
			EffectiveTo:   &effectiveTo,
			Status:        model.ContractSigned,
			TermsSummary:  "Payment due within 14 days of delivery.",
		},
		Order: model.Order{
			OrderNumber:        1001,
			FlightNumber:       "CM101",
			AircraftType:       "B747-8F",
			DepartureCity:      "Frankfurt",
			DepartureAirport:   "FRA",
			DepartureDate:      time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
			ArrivalCity:        "Hong Kong",
			ArrivalAirport:     "HKG",
			ArrivalDate:        time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC),
			DepartureCargoType: model.CargoGeneral,
			Price:              250000,
			Currency:           model.CurrencyUSD,
		},
		Charterer: model.Party{ID: 1, FullName: "A B", Company: "C", Email: "a@x.com"},
		Carrier:   model.Party{ID: 2, FullName: "D E", Company: "F", Email: "d@y.com"},
	}
}

func TestRender(t *testing.T) {
	content, err := NewGenerator().Render(testDocument())
	require.NoError(t, err)
	require.NotEmpty(t, content)
	assert.Equal(t, "%PDF", string(content[:4]))
}

func TestRender_OpenEndedTerm(t *testing.T) {
	doc := testDocument()
	doc.Contract.EffectiveTo = nil
	doc.Contract.TermsSummary = ""

	content, err := NewGenerator().Render(doc)
	require.NoError(t, err)
	assert.NotEmpty(t, content)
}
