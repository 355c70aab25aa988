package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/seftechub/checkout.api.seftechub.com/helpers"
	"github.com/seftechub/checkout.api.seftechub.com/models"
	"github.com/seftechub/checkout.api.seftechub.com/service"
	"github.com/seftechub/checkout.api.seftechub.com/utils"

	"github.com/go-playground/validator/v10"
)

// HandleCreateNotification records a business event as a notification for the
// authenticated user, honouring per-user type preferences
func HandleCreateNotification(w http.ResponseWriter, req *http.Request) {
	// get user details from context, put there by UserAuthenticationInterceptor
	userDetails, ok := req.Context().Value(helpers.ContextKeyUserDetails).(models.AuthUserDetails)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid AuthUserDetails in request context"))
		m := models.NotificationResponse{Success: false, Error: "invalid user details in request context"}
		utils.WriteJSONWithStatus(w, req, m, http.StatusInternalServerError)
		return
	}

	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		m := models.NotificationResponse{Success: false, Error: "request body empty"}
		utils.WriteJSONWithStatus(w, req, m, http.StatusBadRequest)
		return
	}

	requestDecoder := json.NewDecoder(req.Body)
	var incomingNotificationRequest models.IncomingNotificationRequest
	err := requestDecoder.Decode(&incomingNotificationRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		m := models.NotificationResponse{Success: false, Error: "request body invalid"}
		utils.WriteJSONWithStatus(w, req, m, http.StatusBadRequest)
		return
	}

	validate := validator.New()
	if err = validate.Struct(incomingNotificationRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid POST request to create notification: [%v]", err))
		m := models.NotificationResponse{Success: false, Error: err.Error()}
		utils.WriteJSONWithStatus(w, req, m, http.StatusBadRequest)
		return
	}

	notification, responseType, err := notificationService.CreateNotification(req, userDetails.Id, incomingNotificationRequest)

	if responseType == service.Suppressed {
		// a preference gate is a soft no-op, not an error
		log.InfoR(req, "notification suppressed by user preference", log.Data{"user_id": userDetails.Id, "type": incomingNotificationRequest.Type})
		m := models.NotificationResponse{Success: false, Error: err.Error()}
		utils.WriteJSONWithStatus(w, req, m, http.StatusOK)
		return
	}

	if err != nil {
		log.ErrorR(req, fmt.Errorf("error creating notification: [%v]", err))
		m := models.NotificationResponse{Success: false, Error: err.Error()}
		utils.WriteJSONWithStatus(w, req, m, http.StatusBadRequest)
		return
	}

	m := models.NotificationResponse{Success: true, Data: notification}
	utils.WriteJSONWithStatus(w, req, m, http.StatusOK)

	log.InfoR(req, "Successful POST request for new notification", log.Data{"notification_id": notification.ID, "status": http.StatusOK})
}

// HandleGetNotifications returns the authenticated user's unexpired
// notifications, newest first
func HandleGetNotifications(w http.ResponseWriter, req *http.Request) {
	userDetails, ok := req.Context().Value(helpers.ContextKeyUserDetails).(models.AuthUserDetails)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid AuthUserDetails in request context"))
		m := models.NotificationResponse{Success: false, Error: "invalid user details in request context"}
		utils.WriteJSONWithStatus(w, req, m, http.StatusInternalServerError)
		return
	}

	notifications, _, err := notificationService.GetNotifications(userDetails.Id)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error getting notifications: [%v]", err))
		m := models.NotificationResponse{Success: false, Error: err.Error()}
		utils.WriteJSONWithStatus(w, req, m, http.StatusBadRequest)
		return
	}

	m := models.NotificationResponse{Success: true, Data: notifications}
	utils.WriteJSONWithStatus(w, req, m, http.StatusOK)

	log.InfoR(req, "Successful GET request for notifications", log.Data{"user_id": userDetails.Id, "count": len(notifications)})
}
