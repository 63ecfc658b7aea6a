package domain

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleMesario Role = "mesario"
	RoleEleitor Role = "eleitor"
)

// roleRank encodes the fixed partial order admin > mesario > eleitor.
var roleRank = map[Role]int{
	RoleEleitor: 1,
	RoleMesario: 2,
	RoleAdmin:   3,
}

func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// Covers reports whether a holder of role r is allowed to act as required.
// Unknown roles cover nothing and are covered by nothing.
func (r Role) Covers(required Role) bool {
	held, ok := roleRank[r]
	if !ok {
		return false
	}
	need, ok := roleRank[required]
	if !ok {
		return false
	}
	return held >= need
}
