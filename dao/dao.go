package dao

import "github.com/seftechub/checkout.api.seftechub.com/models"

// DAO is an interface for accessing data from a backend store
type DAO interface {
	CreateCheckoutResource(checkoutResource *models.CheckoutResourceDB) error
	GetCheckoutResource(id string) (*models.CheckoutResourceDB, error)
	PatchCheckoutResource(id string, checkoutUpdate *models.CheckoutResourceDB) error
	CreateNotification(notification *models.NotificationDB) error
	GetNotifications(userID string) ([]models.NotificationDB, error)
	GetNotificationSettings(userID string) (*models.NotificationSettingsDB, error)
}
