package entities

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleCustomer, RoleAdmin:
		return Role(raw), true
	default:
		return "", false
	}
}

// Actor identifies who issues a command. It is resolved by the identity
// layer before the engine is invoked; the engine never reads ambient
// identity state.
type Actor struct {
	ID   string
	Role Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
