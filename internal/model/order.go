package model

import "time"

type CargoType string

const (
	CargoGeneral       CargoType = "General Cargo"
	CargoSpecial       CargoType = "Special Cargo"
	CargoDangerous     CargoType = "Dangerous Goods"
	CargoTempSensitive CargoType = "Temperature Sensitive Cargo"
	CargoPerishable    CargoType = "Perishable Goods"
	CargoLiveAnimals   CargoType = "Live Animals"
)

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyRUB Currency = "RUB"
	CurrencyGBP Currency = "GBP"
	CurrencyCNY Currency = "CNY"
)

type PaymentStatus string

const (
	PaymentPaid                     PaymentStatus = "Paid"
	PaymentPending                  PaymentStatus = "Pending"
	PaymentOverdue                  PaymentStatus = "Overdue"
	PaymentCancelled                PaymentStatus = "Cancelled"
	PaymentRefunded                 PaymentStatus = "Refunded"
	PaymentPartiallyPaid            PaymentStatus = "Partially Paid"
	PaymentPartiallyRefunded        PaymentStatus = "Partially Refunded"
	PaymentPartiallyPaidOverdue     PaymentStatus = "Partially Paid & Overdue"
	PaymentPartiallyRefundedOverdue PaymentStatus = "Partially Refunded & Overdue"
)

// Order is one charter leg pair. Owner and partner are two distinct
// references into users; contract_id stays empty until a contract is drawn up.
type Order struct {
	ID                   int64         `gorm:"primaryKey"`
	UserID               int64         `gorm:"column:user_id;not null"`
	PartnerID            int64         `gorm:"column:partner_id;not null"`
	OrderNumber          int64         `gorm:"uniqueIndex;not null"`
	OrderDate            time.Time     `gorm:"not null"`
	AircraftType         string        `gorm:"not null"`
	FlightNumber         string        `gorm:"not null"`
	DepartureDate        time.Time     `gorm:"not null"`
	DepartureCity        string        `gorm:"not null"`
	DepartureAirport     string        `gorm:"not null"`
	DepartureCargoType   CargoType     `gorm:"type:cargo_type;not null"`
	DepartureCargoWeight float64       `gorm:"not null"`
	DepartureCargoVolume float64       `gorm:"not null"`
	ArrivalDate          time.Time     `gorm:"not null"`
	ArrivalCity          string        `gorm:"not null"`
	ArrivalAirport       string        `gorm:"not null"`
	ArrivalCargoType     CargoType     `gorm:"type:cargo_type;not null"`
	ArrivalCargoWeight   float64       `gorm:"not null"`
	ArrivalCargoVolume   float64       `gorm:"not null"`
	RoundTrip            bool          `gorm:"not null"`
	Price                float64       `gorm:"not null"`
	Currency             Currency      `gorm:"type:currency;not null"`
	PaymentStatus        PaymentStatus `gorm:"type:payment_status;not null"`
	ContractID           *int64        `gorm:"column:contract_id"`
	OrderStatus          string        `gorm:"not null"`
	EmptyLegMatch        bool          `gorm:"column:empty_leg_match;not null"`
}

func (Order) TableName() string { return "orders" }
