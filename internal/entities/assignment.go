package entities

import "time"

type AssignmentStatus string

const (
	AssignmentCreated   AssignmentStatus = "created"
	AssignmentPickedUp  AssignmentStatus = "picked_up"
	AssignmentInTransit AssignmentStatus = "in_transit"
	AssignmentCompleted AssignmentStatus = "completed"
	AssignmentCancelled AssignmentStatus = "cancelled"
	AssignmentFailed    AssignmentStatus = "failed"
)

func (s AssignmentStatus) String() string {
	return string(s)
}

// Terminal сообщает что из статуса нет ни одного разрешенного перехода.
func (s AssignmentStatus) Terminal() bool {
	switch s {
	case AssignmentCompleted, AssignmentCancelled, AssignmentFailed:
		return true
	default:
		return false
	}
}

type DriverBrief struct {
	ID          string
	FullName    *string
	Phone       *string
	Rating      *float64
	VehicleType *string
	AvatarURL   *string
}

type RequesterBrief struct {
	ID        string
	FullName  *string
	Phone     *string
	Rating    *float64
	AvatarURL *string
}

type LastLocation struct {
	Lat       float64
	Lng       float64
	UpdatedAt time.Time
}

// RequestSummary — неизменяемый снапшот заявки внутри AssignmentDetail.
// Клиент его никогда не мутирует.
type RequestSummary struct {
	ID                 string
	Type               RequestType
	FromAddress        *string
	ToAddress          *string
	Passengers         *int
	PickupContactName  *string
	PickupContactPhone *string
	WindowStart        *time.Time
	WindowEnd          *time.Time
	Notes              *string
}

// AssignmentDetail — авторитетное серверное представление после матча.
type AssignmentDetail struct {
	AssignmentID    string
	RequestID       string
	Status          AssignmentStatus
	AssignedAt      time.Time
	PickedUpAt      *time.Time
	InTransitAt     *time.Time
	CompletedAt     *time.Time
	CancelledAt     *time.Time
	FailedAt        *time.Time
	PaymentStatus   string
	AgreedPriceCents *int64
	OnchainTxHash   *string
	Driver          DriverBrief
	Requester       *RequesterBrief
	Request         RequestSummary
	LastLocation    *LastLocation
}

type RequestType string

const (
	RequestPackage   RequestType = "package"
	RequestPassenger RequestType = "passenger"
)

// NormalizeRequestType сводит алиасы типов к каноническим значениям:
// 'ride' считается 'passenger', все неизвестное — 'package'.
func NormalizeRequestType(raw string) RequestType {
	switch raw {
	case "passenger", "ride":
		return RequestPassenger
	case "package":
		return RequestPackage
	default:
		return RequestPackage
	}
}
