package entities

import "time"

// Task belongs to exactly one user and is only ever visible to that
// user. Name is stored trimmed.
type Task struct {
	ID        uint
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string
	UserID    uint
}

func NewTask(name string, userID uint) *Task {
	return &Task{
		Name:   name,
		UserID: userID,
	}
}
