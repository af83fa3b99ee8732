package types

import (
	"time"
)

// ReloadMsg asks the model to reload the document shown in the main panel
type ReloadMsg struct {
	// Path is the changed path, empty for a manual reload
	Path string
}

// FrameMsg delivers an animation frame for the given job
type FrameMsg struct {
	JobID int
	Time  time.Time
}

// ToastNotification represents a temporary notification message
type ToastNotification struct {
	Active    bool
	Message   string
	Details   string
	Icon      string
	IsError   bool
	ShowUntil time.Time
}

// ToastMsg is a message type for showing toast notifications
type ToastMsg struct {
	Message string
	Details string
	Icon    string
	IsError bool
}
