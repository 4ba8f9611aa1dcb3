package model

import (
	"fmt"
	"strings"
	"time"
)

type UserRole string

const (
	RoleCharterer UserRole = "Charterer"
	RoleCarrier   UserRole = "Carrier"
	RoleBroker    UserRole = "Broker"
)

// ParseUserRole maps free-form input onto the closed role set.
func ParseUserRole(raw string) (UserRole, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "charterer":
		return RoleCharterer, nil
	case "carrier":
		return RoleCarrier, nil
	case "broker":
		return RoleBroker, nil
	default:
		return "", fmt.Errorf("unknown user role %q", raw)
	}
}

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusDisabled UserStatus = "disabled"
)

const DefaultReputation = 50.0

type User struct {
	ID           int64      `gorm:"primaryKey"`
	Email        string     `gorm:"uniqueIndex;not null"`
	FullName     string     `gorm:"column:full_name"`
	Company      string
	Role         UserRole   `gorm:"type:user_role"`
	Reputation   float64    `gorm:"default:50.0"`
	PasswordHash string     `gorm:"column:password_hash"`
	Status       UserStatus `gorm:"type:user_status;default:active"`
	CreatedAt    time.Time
}

func (User) TableName() string { return "users" }
