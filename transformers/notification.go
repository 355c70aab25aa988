package transformers

import (
	"github.com/seftechub/checkout.api.seftechub.com/models"
)

// NotificationTransformer transforms notification data between rest and
// database models
type NotificationTransformer struct{}

// TransformToDB transforms a notification rest model into a notification
// database model
func (nt NotificationTransformer) TransformToDB(rest models.NotificationRest) models.NotificationDB {
	return models.NotificationDB{
		ID:                rest.ID,
		UserID:            rest.UserID,
		Title:             rest.Title,
		Message:           rest.Message,
		Type:              rest.Type,
		NotificationGroup: rest.NotificationGroup,
		ExpiresAt:         rest.ExpiresAt,
		Metadata:          rest.Metadata,
		Read:              rest.Read,
		CreatedAt:         rest.CreatedAt,
	}
}

// TransformToRest transforms a notification database model into a
// notification rest model
func (nt NotificationTransformer) TransformToRest(dbResource models.NotificationDB) models.NotificationRest {
	return models.NotificationRest{
		ID:                dbResource.ID,
		UserID:            dbResource.UserID,
		Title:             dbResource.Title,
		Message:           dbResource.Message,
		Type:              dbResource.Type,
		NotificationGroup: dbResource.NotificationGroup,
		ExpiresAt:         dbResource.ExpiresAt,
		Metadata:          dbResource.Metadata,
		Read:              dbResource.Read,
		CreatedAt:         dbResource.CreatedAt,
	}
}
