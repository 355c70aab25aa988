package service

import (
	"net/http"

	"github.com/seftechub/checkout.api.seftechub.com/config"
	"github.com/seftechub/checkout.api.seftechub.com/models"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
)

// StripeSDK is an interface for the Stripe client methods used in this
// service
type StripeSDK interface {
	CreateCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type stripeClient struct{}

// GetStripeClient returns a Stripe SDK implementation authenticated with the
// configured secret key
func GetStripeClient(cfg config.Config) StripeSDK {
	stripe.Key = cfg.StripeSecretKey
	return &stripeClient{}
}

// CreateCheckoutSession creates a hosted Checkout Session with Stripe
func (c *stripeClient) CreateCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return session.New(params)
}

// StripeService adapts the checkout session builder to the payment provider
// interface used by the dispatcher
type StripeService struct {
	Checkout *CheckoutService
}

// CreatePaymentAndGenerateNextURL creates a Stripe session for a one-time
// payment intent and returns the hosted page URL
func (s *StripeService) CreatePaymentAndGenerateNextURL(req *http.Request, intent *models.PaymentIntent) (string, ResponseType, error) {
	checkoutSession, responseType, err := s.Checkout.CreateCheckoutSession(req, models.IncomingCheckoutRequest{
		PaymentType: ModePayment,
		Amount:      intent.Amount,
		Currency:    intent.Currency,
		ProductName: intent.ProductName,
	})
	if err != nil {
		return "", responseType, err
	}

	return checkoutSession.URL, responseType, nil
}
