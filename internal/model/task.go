package model

import "time"

// UpdateTask represents a single artifact download
type UpdateTask struct {
	ID            string
	URL           string
	DestPath      string // where the artifact is written
	Status        TaskStatus
	Percent       int   // 0 to 100
	BytesReceived int64 // bytes written so far
	TotalBytes    int64 // declared content length
	LastError     string
	StartedAt     time.Time
	FinishedAt    time.Time
}
