package models

import "time"

// NotificationDB is a notification row scoped to a single user
type NotificationDB struct {
	ID                string                 `bson:"_id"`
	UserID            string                 `bson:"user_id"`
	Title             string                 `bson:"title"`
	Message           string                 `bson:"message"`
	Type              string                 `bson:"type"`
	NotificationGroup string                 `bson:"notification_group,omitempty"`
	ExpiresAt         *time.Time             `bson:"expires_at,omitempty"`
	Metadata          map[string]interface{} `bson:"metadata,omitempty"`
	Read              bool                   `bson:"read"`
	CreatedAt         time.Time              `bson:"created_at"`
}

// NotificationSettingsDB holds a user's per-type notification preferences.
// Fields are pointers so an absent flag is distinguishable from an explicit
// false - only an explicit false suppresses creation.
type NotificationSettingsDB struct {
	UserID         string `bson:"_id"`
	InfoEnabled    *bool  `bson:"info_enabled,omitempty"`
	WarningEnabled *bool  `bson:"warning_enabled,omitempty"`
	SuccessEnabled *bool  `bson:"success_enabled,omitempty"`
	ErrorEnabled   *bool  `bson:"error_enabled,omitempty"`
}

// EnabledFor reports whether notifications of the given type may be created
// for this user
func (s *NotificationSettingsDB) EnabledFor(notificationType string) bool {
	var flag *bool
	switch notificationType {
	case "info":
		flag = s.InfoEnabled
	case "warning":
		flag = s.WarningEnabled
	case "success":
		flag = s.SuccessEnabled
	case "error":
		flag = s.ErrorEnabled
	}
	return flag == nil || *flag
}
