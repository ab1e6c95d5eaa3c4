package domain

// DefaultRoleName is assigned to users who register without naming a role.
const DefaultRoleName = "Designer"

// Role groups users; names are unique.
type Role struct {
	ID   int64
	Name string
}

// User represents an account that can authenticate against the API.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	RoleID       *int64
}
