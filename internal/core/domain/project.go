package domain

import "time"

// Project is a design engagement for a client.
type Project struct {
	ID          int64
	Name        string
	Description *string
	StartDate   *time.Time
	ClientID    *int64
	ClientName  *string
	Products    []ProjectProduct
}
