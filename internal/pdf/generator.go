package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/yerzhan-a/charter-market/internal/model"
)

type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica"}
}

// Render produces the printable charter agreement for a contract.
func (g *Generator) Render(doc model.ContractDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, "AIR CARGO CHARTER AGREEMENT", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Contract No. %d of %s", doc.Contract.ID, formatDate(doc.Contract.ContractDate)), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Order No. %d, flight %s (%s)", doc.Order.OrderNumber, doc.Order.FlightNumber, doc.Order.AircraftType), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	addPartyBlock(pdf, g.fontName, "Charterer", doc.Charterer)
	pdf.Ln(2)
	addPartyBlock(pdf, g.fontName, "Carrier", doc.Carrier)
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Carriage", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("From %s (%s) on %s", doc.Order.DepartureCity, doc.Order.DepartureAirport, formatDate(doc.Order.DepartureDate)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("To %s (%s) on %s", doc.Order.ArrivalCity, doc.Order.ArrivalAirport, formatDate(doc.Order.ArrivalDate)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Cargo: %s, %.2f kg, %.2f m3", doc.Order.DepartureCargoType, doc.Order.DepartureCargoWeight, doc.Order.DepartureCargoVolume), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Price: %.2f %s", doc.Order.Price, doc.Order.Currency), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Term", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	effectiveTo := "open-ended"
	if doc.Contract.EffectiveTo != nil {
		effectiveTo = formatDate(*doc.Contract.EffectiveTo)
	}
	pdf.CellFormat(0, 6, fmt.Sprintf("Effective from %s to %s", formatDate(doc.Contract.EffectiveFrom), effectiveTo), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Status: %s", doc.Contract.Status), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	if doc.Contract.TermsSummary != "" {
		pdf.SetFont(g.fontName, "B", 12)
		pdf.CellFormat(0, 8, "Terms", "", 1, "L", false, 0, "")
		pdf.SetFont(g.fontName, "", 10)
		pdf.MultiCell(0, 5, doc.Contract.TermsSummary, "", "L", false)
		pdf.Ln(2)
	}

	pdf.Ln(4)
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Signatures", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	signatureBlock(pdf, g.fontName, "Charterer", doc.Charterer.FullName)
	signatureBlock(pdf, g.fontName, "Carrier", doc.Carrier.FullName)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func addPartyBlock(pdf *gofpdf.Fpdf, fontName, title string, party model.Party) {
	pdf.SetFont(fontName, "B", 11)
	pdf.CellFormat(0, 6, title, "", 1, "L", false, 0, "")
	pdf.SetFont(fontName, "", 10)
	lines := []string{
		party.FullName,
		fmt.Sprintf("Company: %s", party.Company),
		fmt.Sprintf("Email: %s", party.Email),
	}
	for _, line := range lines {
		pdf.MultiCell(0, 5, line, "", "L", false)
	}
}

func signatureBlock(pdf *gofpdf.Fpdf, fontName, title, name string) {
	pdf.CellFormat(60, 6, title, "", 0, "L", false, 0, "")
	pdf.CellFormat(60, 6, "_______________________", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, name, "", 1, "L", false, 0, "")
	pdf.Ln(2)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02.01.2006")
}
