package entities

// Role определяет путь резолва идентификаторов и домашний экран.
// Никогда не наследуется, передается явно через все операции.
type Role string

const (
	RoleSender Role = "sender"
	RoleRider  Role = "rider"
	RoleDriver Role = "driver"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) Valid() bool {
	switch r {
	case RoleSender, RoleRider, RoleDriver:
		return true
	default:
		return false
	}
}
