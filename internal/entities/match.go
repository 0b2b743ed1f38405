package entities

type MatchPhase string

const (
	MatchSearching MatchPhase = "searching"
	MatchMatched   MatchPhase = "matched"
)

// MatchStatusReply — результат одной проверки статуса матчинга.
// Не персистится, потребляется один раз за тик поллера.
type MatchStatusReply struct {
	Status       MatchPhase
	RequestID    string
	AssignmentID string
}

// ClearingResult — ответ бэкенда на принудительный запуск клиринга.
type ClearingResult struct {
	Cleared bool
	Matches int
	Reason  string
}
