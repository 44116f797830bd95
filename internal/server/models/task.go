package models

import "time"

// Priority of a task. Serialized as its numeric value.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// Task is a work item owned by exactly one account. AccountID is set when the
// task is created and is not changed afterwards.
type Task struct {
	ID              int64
	Name            string
	Description     string
	Priority        Priority
	TerminationDate time.Time
	IsDone          bool
	AccountID       int64
}
