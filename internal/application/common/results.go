package common

// UserResult is the outward-facing projection of a user. The password
// hash deliberately has no field here.
type UserResult struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// TaskResult is the outward-facing projection of a task.
type TaskResult struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	UserID uint   `json:"userId"`
}
