package service

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/seftechub/checkout.api.seftechub.com/config"
	"github.com/seftechub/checkout.api.seftechub.com/dao"
	"github.com/seftechub/checkout.api.seftechub.com/models"
	"github.com/stripe/stripe-go/v82"

	. "github.com/smartystreets/goconvey/convey"
)

func createMockCheckoutService(mockDAO *dao.MockDAO, mockSDK StripeSDK, cfg *config.Config) CheckoutService {
	return CheckoutService{
		DAO:    mockDAO,
		SDK:    mockSDK,
		Config: *cfg,
	}
}

func testConfig() *config.Config {
	cfg, _ := config.Get()
	cfg.StripeSecretKey = "sk_test_123"
	cfg.SiteURL = "https://marketplace.seftechub.com"
	return cfg
}

func TestUnitCheckoutStatus(t *testing.T) {
	Convey("Checkout Status", t, func() {
		So(Pending.String(), ShouldEqual, "pending")
		So(Paid.String(), ShouldEqual, "paid")
		So(Canceled.String(), ShouldEqual, "canceled")
	})
}

func TestUnitConvertToMinorUnits(t *testing.T) {
	Convey("Converting major units to minor units", t, func() {
		minorUnits, err := convertToMinorUnits(19.99)
		So(err, ShouldBeNil)
		So(minorUnits, ShouldEqual, 1999)
	})

	Convey("Whole amounts convert exactly", t, func() {
		minorUnits, err := convertToMinorUnits(150)
		So(err, ShouldBeNil)
		So(minorUnits, ShouldEqual, 15000)
	})

	Convey("Sub-cent amounts round", t, func() {
		minorUnits, err := convertToMinorUnits(0.015)
		So(err, ShouldBeNil)
		So(minorUnits, ShouldEqual, 2)
	})

	Convey("Zero amount rejected", t, func() {
		_, err := convertToMinorUnits(0)
		So(err, ShouldNotBeNil)
	})

	Convey("Negative amount rejected", t, func() {
		_, err := convertToMinorUnits(-5)
		So(err, ShouldNotBeNil)
	})
}

func TestUnitCreateCheckoutSession(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	cfg := testConfig()

	Convey("Stripe secret key not configured", t, func() {
		unconfigured := *cfg
		unconfigured.StripeSecretKey = ""
		mockCheckoutService := CheckoutService{DAO: dao.NewMockDAO(mockCtrl), SDK: NewMockStripeSDK(mockCtrl), Config: unconfigured}
		req := httptest.NewRequest("POST", "/checkout", nil)

		session, responseType, err := mockCheckoutService.CreateCheckoutSession(req, models.IncomingCheckoutRequest{PaymentType: ModePayment, Amount: 10, Currency: "USD"})
		So(session, ShouldBeNil)
		So(responseType, ShouldEqual, Error)
		So(err.Error(), ShouldEqual, "stripe secret key is not configured")
	})

	Convey("Missing currency for one-time payment", t, func() {
		mockCheckoutService := createMockCheckoutService(dao.NewMockDAO(mockCtrl), NewMockStripeSDK(mockCtrl), cfg)
		req := httptest.NewRequest("POST", "/checkout", nil)

		session, responseType, err := mockCheckoutService.CreateCheckoutSession(req, models.IncomingCheckoutRequest{PaymentType: ModePayment, Amount: 10})
		So(session, ShouldBeNil)
		So(responseType, ShouldEqual, InvalidData)
		So(err.Error(), ShouldEqual, "currency is required for one-time payments")
	})

	Convey("Missing amount for one-time payment", t, func() {
		mockCheckoutService := createMockCheckoutService(dao.NewMockDAO(mockCtrl), NewMockStripeSDK(mockCtrl), cfg)
		req := httptest.NewRequest("POST", "/checkout", nil)

		session, responseType, err := mockCheckoutService.CreateCheckoutSession(req, models.IncomingCheckoutRequest{PaymentType: ModePayment, Currency: "USD"})
		So(session, ShouldBeNil)
		So(responseType, ShouldEqual, InvalidData)
		So(err.Error(), ShouldContainSubstring, "error converting amount to minor units")
	})

	Convey("Missing priceId for subscription", t, func() {
		mockCheckoutService := createMockCheckoutService(dao.NewMockDAO(mockCtrl), NewMockStripeSDK(mockCtrl), cfg)
		req := httptest.NewRequest("POST", "/checkout", nil)

		session, responseType, err := mockCheckoutService.CreateCheckoutSession(req, models.IncomingCheckoutRequest{PaymentType: ModeSubscription})
		So(session, ShouldBeNil)
		So(responseType, ShouldEqual, InvalidData)
		So(err.Error(), ShouldEqual, "priceId is required for subscriptions")
	})

	Convey("Unrecognised payment type", t, func() {
		mockCheckoutService := createMockCheckoutService(dao.NewMockDAO(mockCtrl), NewMockStripeSDK(mockCtrl), cfg)
		req := httptest.NewRequest("POST", "/checkout", nil)

		session, responseType, err := mockCheckoutService.CreateCheckoutSession(req, models.IncomingCheckoutRequest{PaymentType: "donation"})
		So(session, ShouldBeNil)
		So(responseType, ShouldEqual, InvalidData)
		So(err.Error(), ShouldEqual, "payment type [donation] not recognised")
	})

	Convey("Error creating session with stripe", t, func() {
		mockSDK := NewMockStripeSDK(mockCtrl)
		mockCheckoutService := createMockCheckoutService(dao.NewMockDAO(mockCtrl), mockSDK, cfg)
		req := httptest.NewRequest("POST", "/checkout", nil)

		mockSDK.EXPECT().CreateCheckoutSession(gomock.Any()).Return(nil, errors.New("provider is down"))

		session, responseType, err := mockCheckoutService.CreateCheckoutSession(req, models.IncomingCheckoutRequest{PaymentType: ModePayment, Amount: 10, Currency: "USD"})
		So(session, ShouldBeNil)
		So(responseType, ShouldEqual, Error)
		So(err.Error(), ShouldContainSubstring, "error creating checkout session with stripe")
	})

	Convey("Successful one-time payment sends minor units and defaults URLs", t, func() {
		mockSDK := NewMockStripeSDK(mockCtrl)
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockCheckoutService := createMockCheckoutService(mockDAO, mockSDK, cfg)
		req := httptest.NewRequest("POST", "/checkout", nil)
		req.Header.Set("Origin", "https://seftechub.com")

		var captured *stripe.CheckoutSessionParams
		mockSDK.EXPECT().CreateCheckoutSession(gomock.Any()).DoAndReturn(
			func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
				captured = params
				return &stripe.CheckoutSession{ID: "cs_test_123", URL: "https://checkout.stripe.com/pay/cs_test_123", Mode: stripe.CheckoutSessionModePayment}, nil
			})
		mockDAO.EXPECT().CreateCheckoutResource(gomock.Any()).Return(nil)

		session, responseType, err := mockCheckoutService.CreateCheckoutSession(req, models.IncomingCheckoutRequest{
			PaymentType: ModePayment,
			Amount:      19.99,
			Currency:    "USD",
			ProductName: "Premium listing",
		})

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(session.SessionID, ShouldEqual, "cs_test_123")
		So(session.URL, ShouldEqual, "https://checkout.stripe.com/pay/cs_test_123")
		So(session.Mode, ShouldEqual, "payment")

		So(*captured.LineItems[0].PriceData.UnitAmount, ShouldEqual, 1999)
		So(*captured.LineItems[0].PriceData.Currency, ShouldEqual, "USD")
		So(*captured.LineItems[0].PriceData.ProductData.Name, ShouldEqual, "Premium listing")
		So(*captured.SuccessURL, ShouldEqual, "https://seftechub.com/payment-success?session_id={CHECKOUT_SESSION_ID}")
		So(*captured.CancelURL, ShouldEqual, "https://seftechub.com/payment-canceled")
	})

	Convey("No origin header falls back to configured site URL", t, func() {
		mockSDK := NewMockStripeSDK(mockCtrl)
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockCheckoutService := createMockCheckoutService(mockDAO, mockSDK, cfg)
		req := httptest.NewRequest("POST", "/checkout", nil)

		var captured *stripe.CheckoutSessionParams
		mockSDK.EXPECT().CreateCheckoutSession(gomock.Any()).DoAndReturn(
			func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
				captured = params
				return &stripe.CheckoutSession{ID: "cs_test_456", URL: "https://checkout.stripe.com/pay/cs_test_456", Mode: stripe.CheckoutSessionModePayment}, nil
			})
		mockDAO.EXPECT().CreateCheckoutResource(gomock.Any()).Return(nil)

		_, responseType, err := mockCheckoutService.CreateCheckoutSession(req, models.IncomingCheckoutRequest{PaymentType: ModePayment, Amount: 10, Currency: "EUR"})

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(*captured.SuccessURL, ShouldEqual, "https://marketplace.seftechub.com/payment-success?session_id={CHECKOUT_SESSION_ID}")
	})

	Convey("Caller-supplied redirect URLs are preserved", t, func() {
		mockSDK := NewMockStripeSDK(mockCtrl)
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockCheckoutService := createMockCheckoutService(mockDAO, mockSDK, cfg)
		req := httptest.NewRequest("POST", "/checkout", nil)

		var captured *stripe.CheckoutSessionParams
		mockSDK.EXPECT().CreateCheckoutSession(gomock.Any()).DoAndReturn(
			func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
				captured = params
				return &stripe.CheckoutSession{ID: "cs_test_789", URL: "https://checkout.stripe.com/pay/cs_test_789", Mode: stripe.CheckoutSessionModePayment}, nil
			})
		mockDAO.EXPECT().CreateCheckoutResource(gomock.Any()).Return(nil)

		_, _, err := mockCheckoutService.CreateCheckoutSession(req, models.IncomingCheckoutRequest{
			PaymentType: ModePayment,
			Amount:      10,
			Currency:    "USD",
			SuccessURL:  "https://custom.example/done",
			CancelURL:   "https://custom.example/canceled",
		})

		So(err, ShouldBeNil)
		So(*captured.SuccessURL, ShouldEqual, "https://custom.example/done")
		So(*captured.CancelURL, ShouldEqual, "https://custom.example/canceled")
	})

	Convey("Successful subscription uses the price id and no amount", t, func() {
		mockSDK := NewMockStripeSDK(mockCtrl)
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockCheckoutService := createMockCheckoutService(mockDAO, mockSDK, cfg)
		req := httptest.NewRequest("POST", "/checkout", nil)

		var captured *stripe.CheckoutSessionParams
		mockSDK.EXPECT().CreateCheckoutSession(gomock.Any()).DoAndReturn(
			func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
				captured = params
				return &stripe.CheckoutSession{ID: "cs_sub_123", URL: "https://checkout.stripe.com/pay/cs_sub_123", Mode: stripe.CheckoutSessionModeSubscription}, nil
			})
		mockDAO.EXPECT().CreateCheckoutResource(gomock.Any()).Return(nil)

		session, responseType, err := mockCheckoutService.CreateCheckoutSession(req, models.IncomingCheckoutRequest{
			PaymentType: ModeSubscription,
			PriceID:     "price_123",
		})

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(session.Mode, ShouldEqual, "subscription")
		So(*captured.Mode, ShouldEqual, "subscription")
		So(*captured.LineItems[0].Price, ShouldEqual, "price_123")
		So(captured.LineItems[0].PriceData, ShouldBeNil)
	})

	Convey("Audit write failure does not fail the request", t, func() {
		mockSDK := NewMockStripeSDK(mockCtrl)
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockCheckoutService := createMockCheckoutService(mockDAO, mockSDK, cfg)
		req := httptest.NewRequest("POST", "/checkout", nil)

		mockSDK.EXPECT().CreateCheckoutSession(gomock.Any()).Return(
			&stripe.CheckoutSession{ID: "cs_test_999", URL: "https://checkout.stripe.com/pay/cs_test_999", Mode: stripe.CheckoutSessionModePayment}, nil)
		mockDAO.EXPECT().CreateCheckoutResource(gomock.Any()).Return(errors.New("db unavailable"))

		session, responseType, err := mockCheckoutService.CreateCheckoutSession(req, models.IncomingCheckoutRequest{PaymentType: ModePayment, Amount: 10, Currency: "USD"})

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(session.SessionID, ShouldEqual, "cs_test_999")
	})
}

func TestUnitGetCheckoutResource(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	cfg := testConfig()

	Convey("Error getting checkout resource from db", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockCheckoutService := createMockCheckoutService(mockDAO, NewMockStripeSDK(mockCtrl), cfg)

		mockDAO.EXPECT().GetCheckoutResource("id123").Return(nil, errors.New("db error"))

		resource, responseType, err := mockCheckoutService.GetCheckoutResource("id123")
		So(resource, ShouldBeNil)
		So(responseType, ShouldEqual, Error)
		So(err.Error(), ShouldContainSubstring, "error getting checkout resource from db")
	})

	Convey("Checkout resource not found", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockCheckoutService := createMockCheckoutService(mockDAO, NewMockStripeSDK(mockCtrl), cfg)

		mockDAO.EXPECT().GetCheckoutResource("id123").Return(nil, nil)

		resource, responseType, err := mockCheckoutService.GetCheckoutResource("id123")
		So(resource, ShouldBeNil)
		So(responseType, ShouldEqual, NotFound)
		So(err, ShouldBeNil)
	})

	Convey("Checkout resource found", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockCheckoutService := createMockCheckoutService(mockDAO, NewMockStripeSDK(mockCtrl), cfg)

		mockDAO.EXPECT().GetCheckoutResource("id123").Return(&models.CheckoutResourceDB{ID: "id123", Provider: "stripe"}, nil)

		resource, responseType, err := mockCheckoutService.GetCheckoutResource("id123")
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(resource.ID, ShouldEqual, "id123")
	})
}
