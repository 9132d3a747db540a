package repository

// ListOptions filters queue tasks.
type ListOptions struct {
	Status          string
	ExecutionStatus string
	Limit           int
}
