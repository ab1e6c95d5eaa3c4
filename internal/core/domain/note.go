package domain

// Note is free text attached to a project.
type Note struct {
	ID          int64
	Text        string
	ProjectID   *int64
	ProjectName *string
}
