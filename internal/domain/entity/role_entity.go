package entity

// Role is the closed set of authorization roles. There are exactly two;
// everything else is rejected at the boundary.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }
