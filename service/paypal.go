package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/google/uuid"
	"github.com/plutov/paypal/v4"
	"github.com/seftechub/checkout.api.seftechub.com/config"
	"github.com/seftechub/checkout.api.seftechub.com/dao"
	"github.com/seftechub/checkout.api.seftechub.com/models"
	"github.com/shopspring/decimal"
)

var payPalClient *paypal.Client

// GetPayPalClient returns a shared PayPal client authenticated with the
// configured credentials
func GetPayPalClient(cfg config.Config) (*paypal.Client, error) {
	if payPalClient != nil {
		return payPalClient, nil
	}

	paypalAPIBase := getPayPalAPIBase(cfg.PaypalEnv)
	if paypalAPIBase == "" {
		return nil, fmt.Errorf("invalid paypal env in config: %s", cfg.PaypalEnv)
	}

	c, err := paypal.NewClient(cfg.PaypalClientID, cfg.PaypalSecret, paypalAPIBase)
	if err != nil {
		return nil, fmt.Errorf("error creating paypal client: [%v]", err)
	}
	_, err = c.GetAccessToken(context.Background())
	if err != nil {
		return nil, fmt.Errorf("error getting access token: [%v]", err)
	}
	payPalClient = c
	return payPalClient, nil
}

func getPayPalAPIBase(env string) string {
	switch env {
	case "live":
		return paypal.APIBaseLive
	case "test":
		return paypal.APIBaseSandBox
	default:
		return ""
	}
}

// PayPalSDK is an interface for all the PayPal client methods that will be
// used in this service
type PayPalSDK interface {
	GetAccessToken(ctx context.Context) (*paypal.TokenResponse, error)
	CreateOrder(ctx context.Context, intent string, purchaseUnits []paypal.PurchaseUnitRequest, payer *paypal.CreateOrderPayer, appContext *paypal.ApplicationContext) (*paypal.Order, error)
	GetOrder(ctx context.Context, orderID string) (*paypal.Order, error)
	CaptureOrder(ctx context.Context, orderID string, captureOrderRequest paypal.CaptureOrderRequest) (*paypal.CaptureOrderResponse, error)
}

// PayPalService handles the specific functionality of integrating PayPal into
// the checkout flow. It covers one-time payments only.
type PayPalService struct {
	Client PayPalSDK
	DAO    dao.DAO
	Config config.Config
}

// CreatePaymentAndGenerateNextURL creates a PayPal order for the given intent
// and returns the approve URL for the caller to redirect to
func (pp *PayPalService) CreatePaymentAndGenerateNextURL(req *http.Request, intent *models.PaymentIntent) (string, ResponseType, error) {

	log.TraceR(req, "performing PayPal request", log.Data{"currency": intent.Currency})

	unitAmount, err := convertToMinorUnits(intent.Amount)
	if err != nil {
		return "", InvalidData, fmt.Errorf("error converting amount to minor units: [%v]", err)
	}

	checkoutResource := models.CheckoutResourceDB{
		ID:          uuid.NewString(),
		Provider:    "paypal",
		Mode:        ModePayment,
		UnitAmount:  unitAmount,
		Currency:    intent.Currency,
		ProductName: intent.ProductName,
		Status:      Pending.String(),
		CreatedAt:   time.Now().Truncate(time.Millisecond),
	}

	if err = pp.DAO.CreateCheckoutResource(&checkoutResource); err != nil {
		return "", Error, fmt.Errorf("error writing checkout resource to MongoDB: [%v]", err)
	}

	order, err := pp.Client.CreateOrder(
		context.Background(),
		paypal.OrderIntentCapture,
		[]paypal.PurchaseUnitRequest{
			{
				ReferenceID: checkoutResource.ID,
				Amount: &paypal.PurchaseUnitAmount{
					// PayPal expects major units with two decimal places
					Value:    decimal.NewFromFloat(intent.Amount).StringFixed(2),
					Currency: intent.Currency,
				},
			},
		},
		nil,
		&paypal.ApplicationContext{
			ReturnURL: fmt.Sprintf("%s/callback/payments/paypal/orders/%s",
				pp.Config.APIBaseURL, checkoutResource.ID),
		},
	)
	if err != nil {
		return "", Error, fmt.Errorf("error creating order: [%v]", err)
	}

	if order.Status != paypal.OrderStatusCreated {
		log.Debug(fmt.Sprintf("paypal order response status: %s", order.Status))
		return "", Error, fmt.Errorf("failed to correctly create paypal order - status is not CREATED")
	}

	var nextURL string
	for _, link := range order.Links {
		if link.Rel == "approve" {
			nextURL = link.Href
		}
	}

	update := models.CheckoutResourceDB{
		Status:            InProgress.String(),
		ProviderSessionID: order.ID,
	}
	if err = pp.DAO.PatchCheckoutResource(checkoutResource.ID, &update); err != nil {
		return "", Error, fmt.Errorf("error storing PayPal order details for checkout resource: [%v]", err)
	}

	return nextURL, Success, nil
}

// CheckPaymentProviderStatus checks the status of the order with PayPal
func (pp *PayPalService) CheckPaymentProviderStatus(checkoutResource *models.CheckoutResourceDB) (*models.StatusResponse, ResponseType, error) {

	order, err := pp.Client.GetOrder(
		context.Background(),
		checkoutResource.ProviderSessionID,
	)
	if err != nil {
		return nil, Error, fmt.Errorf("error checking payment status with PayPal: [%w]", err)
	}

	return &models.StatusResponse{Status: order.Status}, Success, nil
}

// CapturePayment captures an approved PayPal order
func (pp *PayPalService) CapturePayment(orderID string) (*paypal.CaptureOrderResponse, error) {
	return pp.Client.CaptureOrder(context.Background(), orderID, paypal.CaptureOrderRequest{})
}

// MarkPaymentComplete patches the checkout resource with the outcome reported
// by PayPal
func (pp *PayPalService) MarkPaymentComplete(id string, status CheckoutStatus) error {
	update := models.CheckoutResourceDB{
		Status:      status.String(),
		CompletedAt: time.Now().Truncate(time.Millisecond),
	}
	if err := pp.DAO.PatchCheckoutResource(id, &update); err != nil {
		return fmt.Errorf("error updating checkout status: [%v]", err)
	}
	return nil
}
