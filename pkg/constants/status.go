package constants

const (
	StatusPending    = "pending"
	StatusConverting = "converting"
	StatusCompleted  = "completed"
	StatusError      = "error"
	StatusOK         = "ok"
)
