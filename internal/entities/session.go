package entities

type WaitStatus string

const (
	WaitSearching WaitStatus = "searching"
	WaitMatched   WaitStatus = "matched"
	WaitTimeout   WaitStatus = "timeout"
)

func (s WaitStatus) String() string {
	return string(s)
}

// ResolvedIDs — итог резолва идентификаторов для роли.
// AssignmentID, если известен, всегда приоритетнее голого RequestID.
type ResolvedIDs struct {
	RequestID    string
	AssignmentID string
}

func (r ResolvedIDs) Empty() bool {
	return r.RequestID == "" && r.AssignmentID == ""
}

// IDHints — то, что экран знает до начала ожидания (параметры навигации).
type IDHints struct {
	RequestID    string
	OfferID      string
	AssignmentID string
}
