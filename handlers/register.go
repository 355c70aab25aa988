package handlers

import (
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/seftechub/checkout.api.seftechub.com/config"
	"github.com/seftechub/checkout.api.seftechub.com/dao"
	"github.com/seftechub/checkout.api.seftechub.com/interceptors"
	"github.com/seftechub/checkout.api.seftechub.com/service"
	"github.com/gorilla/mux"
)

var checkoutService *service.CheckoutService
var notificationService *service.NotificationService
var payPalService *service.PayPalService
var dispatchProviders map[string]service.PaymentProviderService

// Register defines the route mappings for the main router and its subrouters
func Register(mainRouter *mux.Router, cfg config.Config, m dao.DAO) {
	checkoutService = &service.CheckoutService{
		DAO:    m,
		SDK:    service.GetStripeClient(cfg),
		Config: cfg,
	}

	notificationService = &service.NotificationService{
		DAO:    m,
		Config: cfg,
	}

	dispatchProviders = map[string]service.PaymentProviderService{
		"stripe": &service.StripeService{Checkout: checkoutService},
	}

	// The PayPal path is optional - without credentials the provider falls
	// back to the stub dispatch behaviour
	if cfg.PaypalClientID != "" {
		client, err := service.GetPayPalClient(cfg)
		if err != nil {
			log.Error(fmt.Errorf("error creating paypal client: [%v]", err))
		} else {
			payPalService = &service.PayPalService{
				Client: client,
				DAO:    m,
				Config: cfg,
			}
			dispatchProviders["paypal"] = payPalService
		}
	}

	userAuthInterceptor := &interceptors.UserAuthenticationInterceptor{
		Config: cfg,
	}

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")

	// Create subrouters. Notification routes need the auth middleware and the
	// rest do not, so the router needs to be split up. This allows
	// per-subrouter middleware.

	checkoutRouter := mainRouter.PathPrefix("/checkout").Subrouter()
	checkoutRouter.HandleFunc("", HandleCreateCheckoutSession).Methods("POST").Name("create-checkout-session")

	dispatchRouter := mainRouter.PathPrefix("/payments/dispatch").Subrouter()
	dispatchRouter.HandleFunc("", HandleDispatchPayment).Methods("POST").Name("dispatch-payment")

	notificationsRouter := mainRouter.PathPrefix("/notifications").Subrouter()
	notificationsRouter.HandleFunc("", HandleCreateNotification).Methods("POST").Name("create-notification")
	notificationsRouter.HandleFunc("", HandleGetNotifications).Methods("GET").Name("get-notifications")

	// Terminal pages are pure display states derived from the URL, so no auth
	mainRouter.HandleFunc("/payment-success", HandlePaymentSuccess).Methods("GET").Name("payment-success")
	mainRouter.HandleFunc("/payment-canceled", HandlePaymentCanceled).Methods("GET").Name("payment-canceled")

	// callback endpoints should not be intercepted by the userauth interceptor, so need their own subrouter
	callbackRouter := mainRouter.PathPrefix("/callback").Subrouter()
	callbackRouter.HandleFunc("/payments/paypal/orders/{checkout_id}", HandlePayPalCallback).Methods("GET").Name("handle-paypal-callback")

	// Set middleware for subrouters
	checkoutRouter.Use(log.Handler)
	dispatchRouter.Use(log.Handler)
	notificationsRouter.Use(log.Handler, userAuthInterceptor.UserAuthenticationIntercept)
	callbackRouter.Use(log.Handler)
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
