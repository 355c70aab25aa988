package handlers

import (
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/plutov/paypal/v4"
	"github.com/seftechub/checkout.api.seftechub.com/models"
	"github.com/seftechub/checkout.api.seftechub.com/service"
	"github.com/gorilla/mux"
)

// handlePaymentMessage allows us to mock the call to produceCheckoutMessage for unit tests
var handlePaymentMessage = produceCheckoutMessage

// HandlePayPalCallback handles the return from PayPal's approval page,
// captures the approved order and redirects the user to a terminal page
func HandlePayPalCallback(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	id := vars["checkout_id"]
	if id == "" {
		log.ErrorR(req, fmt.Errorf("checkout id not supplied"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if payPalService == nil {
		log.ErrorR(req, fmt.Errorf("paypal callback received but paypal is not configured"))
		w.WriteHeader(http.StatusPreconditionFailed)
		return
	}

	checkoutResource, responseType, err := checkoutService.GetCheckoutResource(id)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error getting checkout resource: [%v]", err), log.Data{"service_response_type": responseType.String()})
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if responseType == service.NotFound {
		log.ErrorR(req, fmt.Errorf("checkout resource not found. id: %s", id))
		w.WriteHeader(http.StatusNotFound)
		return
	}

	// Ensure the provider matches the endpoint
	if checkoutResource.Provider != "paypal" {
		log.ErrorR(req, fmt.Errorf("provider, [%s], for resource [%s] not recognised", checkoutResource.Provider, id))
		w.WriteHeader(http.StatusPreconditionFailed)
		return
	}

	statusResponse, responseType, err := payPalService.CheckPaymentProviderStatus(checkoutResource)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error getting payment status from paypal: [%v]", err), log.Data{"service_response_type": responseType.String()})
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if statusResponse.Status != paypal.OrderStatusApproved {
		log.InfoR(req, "paypal order not approved, redirecting to canceled page", log.Data{"checkout_id": id, "order_status": statusResponse.Status})

		if err = payPalService.MarkPaymentComplete(id, service.Canceled); err != nil {
			log.ErrorR(req, fmt.Errorf("error setting checkout status: [%v]", err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		redirectUser(w, req, checkoutService.Config.SiteURL+"/payment-canceled", models.RedirectParams{
			Status: service.Canceled.String(),
			Ref:    id,
		})
		return
	}

	if _, err = payPalService.CapturePayment(checkoutResource.ProviderSessionID); err != nil {
		log.ErrorR(req, fmt.Errorf("error capturing paypal order: [%v]", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err = payPalService.MarkPaymentComplete(id, service.Paid); err != nil {
		log.ErrorR(req, fmt.Errorf("error setting checkout status: [%v]", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err = handlePaymentMessage(id); err != nil {
		// The payment itself completed, so log and carry on to the redirect
		log.ErrorR(req, fmt.Errorf("error producing checkout processed message: [%v]", err), log.Data{"checkout_id": id})
	}

	redirectUser(w, req, checkoutService.Config.SiteURL+"/payment-success", models.RedirectParams{
		Status: service.Paid.String(),
		Ref:    id,
	})
}

// redirectUser redirects the user to the provided URI with query params
func redirectUser(w http.ResponseWriter, r *http.Request, redirectURI string, params models.RedirectParams) {
	req, err := http.NewRequest("GET", redirectURI, nil)
	if err != nil {
		log.ErrorR(r, fmt.Errorf("error redirecting user: [%s]", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	query := req.URL.Query()
	query.Add("status", params.Status)
	query.Add("ref", params.Ref)

	generatedURL := fmt.Sprintf("%s?%s", redirectURI, query.Encode())
	log.InfoR(r, "Redirecting to:", log.Data{"generated_url": generatedURL})

	http.Redirect(w, r, generatedURL, http.StatusSeeOther)
}
