package entities

import "time"

// RequestBucket — UI-корзины списков собственных заявок.
// Терминальная корзина называется по-разному у sender и rider.
type RequestBucket string

const (
	BucketOpen      RequestBucket = "open"
	BucketActive    RequestBucket = "active"
	BucketDelivered RequestBucket = "delivered"
	BucketCompleted RequestBucket = "completed"
)

func (b RequestBucket) String() string {
	return string(b)
}

// RequestRow — строка списка заявок владельца.
type RequestRow struct {
	ID          string
	Status      string
	Type        RequestType
	FromAddress *string
	ToAddress   *string
	Passengers  *int
	Notes       *string
	WindowStart *time.Time
	WindowEnd   *time.Time
	CreatedAt   time.Time
}
