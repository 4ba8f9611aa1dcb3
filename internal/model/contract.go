package model

import "time"

type ContractStatus string

const (
	ContractPending   ContractStatus = "Pending"
	ContractSigned    ContractStatus = "Signed"
	ContractCancelled ContractStatus = "Cancelled"
)

type Contract struct {
	ID            int64          `gorm:"primaryKey"`
	OrderID       int64          `gorm:"column:order_id;not null"`
	ChartererID   int64          `gorm:"column:charterer_id;not null"`
	CarrierID     int64          `gorm:"column:carrier_id;not null"`
	ContractDate  time.Time      `gorm:"not null"`
	EffectiveFrom time.Time      `gorm:"not null"`
	EffectiveTo   *time.Time
	Status        ContractStatus `gorm:"type:contract_status;not null"`
	FileURL       string         `gorm:"column:file_url"`
	TermsSummary  string
	CreatedAt     time.Time
}

func (Contract) TableName() string { return "contracts" }

// Party is the slice of a user that appears on contract paperwork.
type Party struct {
	ID       int64
	FullName string
	Company  string
	Email    string
}

type ContractDocument struct {
	Contract  Contract
	Order     Order
	Charterer Party
	Carrier   Party
}
