package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/seftechub/checkout.api.seftechub.com/models"
	"github.com/seftechub/checkout.api.seftechub.com/service"
	"github.com/seftechub/checkout.api.seftechub.com/utils"
)

// HandleDispatchPayment routes a payment intent to the matching provider
// path. Gateway providers respond with a redirect URL; stub providers
// complete synchronously with no session created.
func HandleDispatchPayment(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		m := utils.NewErrorResponse("request body empty")
		utils.WriteJSONWithStatus(w, req, m, http.StatusBadRequest)
		return
	}

	requestDecoder := json.NewDecoder(req.Body)
	var intent models.PaymentIntent
	err := requestDecoder.Decode(&intent)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		m := utils.NewErrorResponse("request body invalid")
		utils.WriteJSONWithStatus(w, req, m, http.StatusBadRequest)
		return
	}

	// Each request models one submission, so each gets a fresh dispatcher
	dispatcher := service.NewDispatcher(dispatchProviders, nil)

	outcome, responseType, err := dispatcher.Submit(req, intent)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error dispatching payment: [%v]", err), log.Data{"provider": intent.Provider, "dispatch_state": dispatcher.State().String()})
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

	response := models.DispatchResponse{
		URL:       outcome.NextURL,
		Completed: outcome.Completed,
		Provider:  intent.Provider,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error writing response: %v", err))
		return
	}

	log.InfoR(req, "Successful POST request to dispatch payment", log.Data{"provider": intent.Provider, "completed": outcome.Completed})
}
