package domain

// Employee is a member of the design team.
type Employee struct {
	ID   int64
	Name string
}
