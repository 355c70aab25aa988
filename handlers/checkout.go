package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/seftechub/checkout.api.seftechub.com/models"
	"github.com/seftechub/checkout.api.seftechub.com/service"
	"github.com/seftechub/checkout.api.seftechub.com/utils"

	"github.com/go-playground/validator/v10"
)

// HandleCreateCheckoutSession creates a checkout session with the payment
// provider and returns the hosted page URL for the calling app to redirect to
func HandleCreateCheckoutSession(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		m := utils.NewErrorResponse("request body empty")
		utils.WriteJSONWithStatus(w, req, m, http.StatusBadRequest)
		return
	}

	requestDecoder := json.NewDecoder(req.Body)
	var incomingCheckoutRequest models.IncomingCheckoutRequest
	err := requestDecoder.Decode(&incomingCheckoutRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		m := utils.NewErrorResponse("request body invalid")
		utils.WriteJSONWithStatus(w, req, m, http.StatusBadRequest)
		return
	}

	if err = validateCheckoutCreate(incomingCheckoutRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid POST request to create checkout session: [%v]", err))
		m := utils.NewErrorResponse(err.Error())
		utils.WriteJSONWithStatus(w, req, m, http.StatusBadRequest)
		return
	}

	checkoutSession, responseType, err := checkoutService.CreateCheckoutSession(req, incomingCheckoutRequest)

	if err != nil {
		log.ErrorR(req, fmt.Errorf("error creating checkout session: [%v]", err))
		m := utils.NewErrorResponse(err.Error())
		switch responseType {
		case service.InvalidData:
			utils.WriteJSONWithStatus(w, req, m, http.StatusBadRequest)
			return
		default:
			utils.WriteJSONWithStatus(w, req, m, http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	err = json.NewEncoder(w).Encode(checkoutSession)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error writing response: %v", err))
		return
	}

	log.InfoR(req, "Successful POST request for new checkout session", log.Data{"session_id": checkoutSession.SessionID, "mode": checkoutSession.Mode, "status": http.StatusOK})
}

func validateCheckoutCreate(incomingCheckoutRequest models.IncomingCheckoutRequest) error {
	validate := validator.New()
	return validate.Struct(incomingCheckoutRequest)
}
