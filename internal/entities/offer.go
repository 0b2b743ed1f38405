package entities

import "time"

type OfferStatus string

const (
	OfferActive    OfferStatus = "active"
	OfferAssigned  OfferStatus = "assigned"
	OfferCancelled OfferStatus = "cancelled"
)

func (s OfferStatus) String() string {
	return string(s)
}

// OfferRow — строка списка офферов водителя.
// RequestID заполняется сервером только после назначения.
type OfferRow struct {
	ID          string
	Status      OfferStatus
	RequestID   *string
	FromAddress string
	ToAddress   *string
	WindowStart time.Time
	WindowEnd   time.Time
	MinPrice    string
	Types       []string
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
