package negotiation

// Role is the closed set of negotiating parties. Every offer carries a
// Role, and the alternation rule is checked against it.
type Role string

const (
	RoleHomeowner Role = "homeowner"
	RoleInstaller Role = "installer"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleHomeowner, RoleInstaller:
		return true
	default:
		return false
	}
}

// Opponent returns the other side of the table.
func (r Role) Opponent() Role {
	if r == RoleHomeowner {
		return RoleInstaller
	}
	return RoleHomeowner
}

// Status is the session lifecycle. Only InNegotiation permits writes;
// the other three are terminal and never transition again.
type Status string

const (
	StatusInNegotiation Status = "in_negotiation"
	StatusAccepted      Status = "accepted"
	StatusDeclined      Status = "declined"
	StatusExpired       Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusInNegotiation, StatusAccepted, StatusDeclined, StatusExpired:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s != StatusInNegotiation
}
