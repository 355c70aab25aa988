package models

import "time"

// IncomingNotificationRequest is the data received in the body of a request
// to create a notification
type IncomingNotificationRequest struct {
	Title             string                 `json:"title" validate:"required"`
	Message           string                 `json:"message" validate:"required"`
	Type              string                 `json:"type" validate:"required,oneof=info warning success error"`
	NotificationGroup string                 `json:"notification_group,omitempty"`
	ExpiresAt         *time.Time             `json:"expires_at,omitempty"`
	Metadata          map[string]interface{} `json:"metadata,omitempty"`
}

// NotificationRest is the public facing notification returned in responses
type NotificationRest struct {
	ID                string                 `json:"id"`
	UserID            string                 `json:"user_id"`
	Title             string                 `json:"title"`
	Message           string                 `json:"message"`
	Type              string                 `json:"type"`
	NotificationGroup string                 `json:"notification_group,omitempty"`
	ExpiresAt         *time.Time             `json:"expires_at,omitempty"`
	Metadata          map[string]interface{} `json:"metadata,omitempty"`
	Read              bool                   `json:"read"`
	CreatedAt         time.Time              `json:"created_at"`
}

// NotificationResponse is the envelope returned by the notification
// endpoints. A suppressed notification is a success:false response with a
// reason, not an error.
type NotificationResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}
