package model

// NotificationMode selects how completion notifications leave the process.
type NotificationMode string

const (
	NotificationDirect   NotificationMode = "direct"
	NotificationQueue    NotificationMode = "queue"
	NotificationDisabled NotificationMode = "disabled"
)

func (mode NotificationMode) Valid() bool {
	switch mode {
	case NotificationDirect, NotificationQueue, NotificationDisabled:
		return true
	}
	return false
}
