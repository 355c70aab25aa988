package service

import (
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/google/uuid"
	"github.com/seftechub/checkout.api.seftechub.com/config"
	"github.com/seftechub/checkout.api.seftechub.com/dao"
	"github.com/seftechub/checkout.api.seftechub.com/models"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
)

// CheckoutService contains the DAO for db access and the Stripe SDK seam
type CheckoutService struct {
	DAO    dao.DAO
	SDK    StripeSDK
	Config config.Config
}

// CheckoutStatus Enum Type
type CheckoutStatus int

// Enumeration containing all possible checkout statuses
const (
	Pending CheckoutStatus = 1 + iota
	InProgress
	Paid
	Failed
	Canceled
)

// String representation of checkout statuses
var checkoutStatuses = [...]string{
	"pending",
	"in-progress",
	"paid",
	"failed",
	"canceled",
}

func (checkoutStatus CheckoutStatus) String() string {
	return checkoutStatuses[checkoutStatus-1]
}

// SessionIDPlaceholder is the literal token Stripe substitutes with the real
// session id at redirect time. It must reach the provider unmodified.
const SessionIDPlaceholder = "{CHECKOUT_SESSION_ID}"

// checkout session modes as sent to the provider
const (
	ModePayment      = "payment"
	ModeSubscription = "subscription"
)

// CreateCheckoutSession translates an incoming checkout request into a Stripe
// Checkout Session and returns the redirect target. Exactly one provider
// session is created per call - failures are never retried here.
func (service *CheckoutService) CreateCheckoutSession(req *http.Request, incoming models.IncomingCheckoutRequest) (*models.CheckoutSessionRest, ResponseType, error) {
	if service.Config.StripeSecretKey == "" {
		return nil, Error, fmt.Errorf("stripe secret key is not configured")
	}

	successURL, cancelURL := service.resolveRedirectURLs(req, incoming)

	params := &stripe.CheckoutSessionParams{
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(cancelURL),
	}

	checkoutResource := models.CheckoutResourceDB{
		ID:          uuid.NewString(),
		Provider:    "stripe",
		Mode:        incoming.PaymentType,
		Status:      Pending.String(),
		SuccessURL:  successURL,
		CancelURL:   cancelURL,
		ProductName: incoming.ProductName,
		// To match the format time is saved to mongo, e.g. "2018-11-22T08:39:16.782Z", truncate the time
		CreatedAt: time.Now().Truncate(time.Millisecond),
	}

	switch incoming.PaymentType {
	case ModePayment:
		if incoming.Currency == "" {
			return nil, InvalidData, fmt.Errorf("currency is required for one-time payments")
		}
		unitAmount, err := convertToMinorUnits(incoming.Amount)
		if err != nil {
			return nil, InvalidData, fmt.Errorf("error converting amount to minor units: [%v]", err)
		}

		productName := incoming.ProductName
		if productName == "" {
			productName = "SefTecHub Payment"
		}

		params.Mode = stripe.String(string(stripe.CheckoutSessionModePayment))
		params.LineItems = []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(incoming.Currency),
					UnitAmount: stripe.Int64(unitAmount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(productName),
					},
				},
			},
		}

		checkoutResource.UnitAmount = unitAmount
		checkoutResource.Currency = incoming.Currency

	case ModeSubscription:
		if incoming.PriceID == "" {
			return nil, InvalidData, fmt.Errorf("priceId is required for subscriptions")
		}

		params.Mode = stripe.String(string(stripe.CheckoutSessionModeSubscription))
		params.LineItems = []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(incoming.PriceID),
				Quantity: stripe.Int64(1),
			},
		}

		checkoutResource.PriceID = incoming.PriceID

	default:
		return nil, InvalidData, fmt.Errorf("payment type [%s] not recognised", incoming.PaymentType)
	}

	session, err := service.SDK.CreateCheckoutSession(params)
	if err != nil {
		return nil, Error, fmt.Errorf("error creating checkout session with stripe: [%v]", err)
	}

	checkoutResource.ProviderSessionID = session.ID

	// The provider session already exists, so a failed audit write must not
	// fail the request - a resubmission would create a second session.
	if err = service.DAO.CreateCheckoutResource(&checkoutResource); err != nil {
		log.ErrorR(req, fmt.Errorf("error writing checkout resource to MongoDB: [%v]", err), log.Data{"session_id": session.ID})
	}

	return &models.CheckoutSessionRest{
		SessionID: session.ID,
		URL:       session.URL,
		Mode:      string(session.Mode),
	}, Success, nil
}

// GetCheckoutResource retrieves the audit record for a checkout session
func (service *CheckoutService) GetCheckoutResource(id string) (*models.CheckoutResourceDB, ResponseType, error) {
	checkoutResource, err := service.DAO.GetCheckoutResource(id)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting checkout resource from db: [%v]", err)
	}
	if checkoutResource == nil {
		return nil, NotFound, nil
	}

	return checkoutResource, Success, nil
}

// resolveRedirectURLs returns the success and cancel URLs for a session,
// defaulting from the request's declared origin when the caller supplies
// none. The session id placeholder is filled in by Stripe, not here.
func (service *CheckoutService) resolveRedirectURLs(req *http.Request, incoming models.IncomingCheckoutRequest) (string, string) {
	origin := req.Header.Get("Origin")
	if origin == "" {
		origin = service.Config.SiteURL
	}

	successURL := incoming.SuccessURL
	if successURL == "" {
		successURL = origin + "/payment-success?session_id=" + SessionIDPlaceholder
	}

	cancelURL := incoming.CancelURL
	if cancelURL == "" {
		cancelURL = origin + "/payment-canceled"
	}

	return successURL, cancelURL
}

// convertToMinorUnits converts an amount in major currency units to provider
// minor units, e.g. 19.99 to 1999. This is the only place in the service
// where the conversion happens.
func convertToMinorUnits(amount float64) (int64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("amount [%v] is not a finite number", amount)
	}
	if amount <= 0 {
		return 0, fmt.Errorf("amount [%v] must be greater than zero", amount)
	}

	minorUnits := decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Round(0)

	return minorUnits.IntPart(), nil
}
