package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/yerzhan-a/charter-market/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate builds the order ledger workbook: a header block describing the
// account followed by one row per order.
func (g *Generator) Generate(owner model.Principal, orders []model.Order) ([]byte, error) {
	file := excelize.NewFile()

	sheet := "Orders"
	file.SetSheetName("Sheet1", sheet)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Account")
	set("B1", owner.FullName)
	set("A2", "Role")
	set("B2", string(owner.Role))
	set("A3", "Exported")
	set("B3", time.Now().Format("2006-01-02"))
	set("A4", "Orders")
	set("B4", len(orders))

	headers := []string{
		"Order #",
		"Order date",
		"Flight",
		"Aircraft",
		"From",
		"To",
		"Cargo",
		"Weight, kg",
		"Volume, m3",
		"Round trip",
		"Price",
		"Currency",
		"Payment status",
		"Order status",
		"Empty leg",
	}
	tableRow := 6
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, tableRow)
		set(cell, header)
	}

	for i, order := range orders {
		row := tableRow + 1 + i
		values := []interface{}{
			order.OrderNumber,
			formatDate(order.OrderDate),
			order.FlightNumber,
			order.AircraftType,
			fmt.Sprintf("%s (%s)", order.DepartureCity, order.DepartureAirport),
			fmt.Sprintf("%s (%s)", order.ArrivalCity, order.ArrivalAirport),
			string(order.DepartureCargoType),
			order.DepartureCargoWeight,
			order.DepartureCargoVolume,
			formatBool(order.RoundTrip),
			order.Price,
			string(order.Currency),
			string(order.PaymentStatus),
			order.OrderStatus,
			formatBool(order.EmptyLegMatch),
		}
		for j, value := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			set(cell, value)
		}
	}

	_ = file.SetColWidth(sheet, "A", "A", 14)
	_ = file.SetColWidth(sheet, "B", "F", 22)
	_ = file.SetColWidth(sheet, "G", "G", 28)
	_ = file.SetColWidth(sheet, "H", "O", 14)

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02.01.2006")
}

func formatBool(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
