package service

import (
	"net/http"

	"github.com/seftechub/checkout.api.seftechub.com/models"
)

// PaymentProviderService is an interface for requests to external payment
// providers that host their own checkout page
type PaymentProviderService interface {
	CreatePaymentAndGenerateNextURL(req *http.Request, intent *models.PaymentIntent) (string, ResponseType, error)
}
