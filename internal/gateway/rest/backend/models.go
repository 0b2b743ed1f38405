package backend

import "time"

type deferPushRequest struct {
	Seconds int `json:"seconds"`
}

type deferPushResponse struct {
	PushDeferUntil *time.Time `json:"push_defer_until,omitempty"`
}

type matchStatusResponse struct {
	Status       string  `json:"status"`
	RequestID    *string `json:"request_id,omitempty"`
	AssignmentID *string `json:"assignment_id,omitempty"`
}

type requestRowResponse struct {
	ID          string     `json:"id"`
	Status      string     `json:"status"`
	Type        string     `json:"type"`
	FromAddress *string    `json:"from_address,omitempty"`
	ToAddress   *string    `json:"to_address,omitempty"`
	Passengers  *int       `json:"passengers,omitempty"`
	Seats       *int       `json:"seats,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
	WindowStart *time.Time `json:"window_start,omitempty"`
	WindowEnd   *time.Time `json:"window_end,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type offerRowResponse struct {
	ID          string    `json:"id"`
	Status      string    `json:"status"`
	RequestID   *string   `json:"request_id,omitempty"`
	FromAddress string    `json:"from_address"`
	ToAddress   *string   `json:"to_address,omitempty"`
	WindowStart time.Time `json:"window_start"`
	WindowEnd   time.Time `json:"window_end"`
	MinPrice    string    `json:"min_price"`
	Types       []string  `json:"types"`
	Notes       *string   `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type driverBriefResponse struct {
	ID          string   `json:"id"`
	FullName    *string  `json:"full_name,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	VehicleType *string  `json:"vehicle_type,omitempty"`
	AvatarURL   *string  `json:"avatar_url,omitempty"`
}

type requesterBriefResponse struct {
	ID        string   `json:"id"`
	FullName  *string  `json:"full_name,omitempty"`
	Phone     *string  `json:"phone,omitempty"`
	Rating    *float64 `json:"rating,omitempty"`
	AvatarURL *string  `json:"avatar_url,omitempty"`
}

type lastLocationResponse struct {
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	UpdatedAt time.Time `json:"updated_at"`
}

type requestBriefResponse struct {
	ID                 string     `json:"id"`
	Type               string     `json:"type"`
	FromAddress        *string    `json:"from_address,omitempty"`
	ToAddress          *string    `json:"to_address,omitempty"`
	Passengers         *int       `json:"passengers,omitempty"`
	PickupContactName  *string    `json:"pickup_contact_name,omitempty"`
	PickupContactPhone *string    `json:"pickup_contact_phone,omitempty"`
	WindowStart        *time.Time `json:"window_start,omitempty"`
	WindowEnd          *time.Time `json:"window_end,omitempty"`
	Notes              *string    `json:"notes,omitempty"`
}

type assignmentDetailResponse struct {
	AssignmentID     string                  `json:"assignment_id"`
	RequestID        string                  `json:"request_id"`
	Status           string                  `json:"status"`
	AssignedAt       time.Time               `json:"assigned_at"`
	PickedUpAt       *time.Time              `json:"picked_up_at,omitempty"`
	InTransitAt      *time.Time              `json:"in_transit_at,omitempty"`
	CompletedAt      *time.Time              `json:"completed_at,omitempty"`
	CancelledAt      *time.Time              `json:"cancelled_at,omitempty"`
	FailedAt         *time.Time              `json:"failed_at,omitempty"`
	PaymentStatus    string                  `json:"payment_status"`
	AgreedPriceCents *int64                  `json:"agreed_price_cents,omitempty"`
	OnchainTxHash    *string                 `json:"onchain_tx_hash,omitempty"`
	Driver           driverBriefResponse     `json:"driver"`
	Requester        *requesterBriefResponse `json:"requester,omitempty"`
	Request          requestBriefResponse    `json:"request"`
	LastLocation     *lastLocationResponse   `json:"last_location,omitempty"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type clearingRequest struct {
	NowTS int64 `json:"now_ts"`
}

type clearingResponse struct {
	Cleared bool   `json:"cleared"`
	Matches *int   `json:"matches,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}
