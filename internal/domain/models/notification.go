// internal/domain/models/notification.go
package models

import "time"

// NotificationType selects the badge style on the notifications page.
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

// Notification is a per-citizen message. Both scripts are carried so
// switching languages never drops history.
type Notification struct {
	ID            string           `json:"id"`
	UserID        string           `json:"user_id"`
	Title         string           `json:"title"`
	TitleArabic   string           `json:"title_arabic"`
	Message       string           `json:"message"`
	MessageArabic string           `json:"message_arabic"`
	Type          NotificationType `json:"type"`
	IsRead        bool             `json:"is_read"`
	CreatedAt     time.Time        `json:"created_at"`
	ActionURL     string           `json:"action_url,omitempty"`
	ApplicationID string           `json:"application_id,omitempty"`
}
