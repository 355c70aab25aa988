package service

import (
	"fmt"
	"net/http"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/google/uuid"
	"github.com/seftechub/checkout.api.seftechub.com/config"
	"github.com/seftechub/checkout.api.seftechub.com/dao"
	"github.com/seftechub/checkout.api.seftechub.com/models"
	"github.com/seftechub/checkout.api.seftechub.com/transformers"
)

// NotificationService contains the DAO for db access
type NotificationService struct {
	DAO    dao.DAO
	Config config.Config
}

// CreateNotification records a business event as a notification scoped to the
// authenticated user. A per-user preference explicitly disabling the type
// turns the call into a soft no-op rather than an error.
func (service *NotificationService) CreateNotification(req *http.Request, userID string, incoming models.IncomingNotificationRequest) (*models.NotificationRest, ResponseType, error) {
	settings, err := service.DAO.GetNotificationSettings(userID)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting notification settings: [%v]", err)
	}

	// No settings row means no gating record is present, so creation is
	// allowed by default
	if settings != nil && !settings.EnabledFor(incoming.Type) {
		return nil, Suppressed, fmt.Errorf("user has disabled %s notifications", incoming.Type)
	}

	notification := models.NotificationDB{
		ID:                uuid.NewString(),
		UserID:            userID,
		Title:             incoming.Title,
		Message:           incoming.Message,
		Type:              incoming.Type,
		NotificationGroup: incoming.NotificationGroup,
		ExpiresAt:         incoming.ExpiresAt,
		Metadata:          incoming.Metadata,
		// To match the format time is saved to mongo, truncate the time
		CreatedAt: time.Now().Truncate(time.Millisecond),
	}

	if err = service.DAO.CreateNotification(&notification); err != nil {
		return nil, Error, fmt.Errorf("error writing notification to MongoDB: [%v]", err)
	}

	log.InfoR(req, "notification created", log.Data{"notification_id": notification.ID, "user_id": userID, "type": notification.Type})

	rest := transformers.NotificationTransformer{}.TransformToRest(notification)
	return &rest, Success, nil
}

// GetNotifications returns the user's notifications with expired rows
// filtered out, newest first
func (service *NotificationService) GetNotifications(userID string) ([]models.NotificationRest, ResponseType, error) {
	notifications, err := service.DAO.GetNotifications(userID)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting notifications from db: [%v]", err)
	}

	now := time.Now()
	rest := make([]models.NotificationRest, 0, len(notifications))
	for _, notification := range notifications {
		if notification.ExpiresAt != nil && notification.ExpiresAt.Before(now) {
			continue
		}
		rest = append(rest, transformers.NotificationTransformer{}.TransformToRest(notification))
	}

	return rest, Success, nil
}
