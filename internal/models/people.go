package models

// Employee is a row of the employees table.
type Employee struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// Client is a row of the clients table joined with the assigned employee name.
type Client struct {
	ID             int64   `db:"id"`
	Name           string  `db:"name"`
	FirstName      *string `db:"first_name"`
	LastName       *string `db:"last_name"`
	PrimaryPhone   *string `db:"primary_phone"`
	PrimaryEmail   *string `db:"primary_email"`
	SecondaryPhone *string `db:"secondary_phone"`
	SecondaryEmail *string `db:"secondary_email"`
	ReferralType   *string `db:"referral_type"`
	EmployeeID     *int64  `db:"employee_id"`
	EmployeeName   *string `db:"employee_name"`
	ContactInfo    *string `db:"contact_info"`
}

// Lead is a row of the leads table joined with its stage name.
type Lead struct {
	ID          int64   `db:"id"`
	Name        string  `db:"name"`
	ContactInfo *string `db:"contact_info"`
	StageID     *int64  `db:"stage_id"`
	StageName   *string `db:"stage_name"`
}

// Lookup is a row of a reference table.
type Lookup struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// User is a row of the users table.
type User struct {
	ID           int64  `db:"id"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
	RoleID       *int64 `db:"role_id"`
}
