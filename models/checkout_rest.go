package models

// IncomingCheckoutRequest is the data received in the body of a request to
// create a checkout session
type IncomingCheckoutRequest struct {
	PaymentType string  `json:"paymentType" validate:"required,oneof=payment subscription"`
	Amount      float64 `json:"amount,omitempty"`
	Currency    string  `json:"currency,omitempty"`
	PriceID     string  `json:"priceId,omitempty"`
	ProductName string  `json:"productName,omitempty"`
	SuccessURL  string  `json:"successUrl,omitempty"`
	CancelURL   string  `json:"cancelUrl,omitempty"`
}

// CheckoutSessionRest is the public facing checkout session reference returned
// in the response. The URL is the hosted page the caller must redirect to.
type CheckoutSessionRest struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
	Mode      string `json:"mode,omitempty"`
}

// PaymentIntent is the ephemeral, client-constructed description of a payment
// submission. It is passed by value to the dispatcher and never persisted.
type PaymentIntent struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Currency    string  `json:"currency" validate:"required,len=3"`
	Provider    string  `json:"provider" validate:"required"`
	ProductName string  `json:"productName,omitempty"`
}

// DispatchResponse is returned by the payment dispatch endpoint. Exactly one
// of URL or Completed is meaningful: a URL means the caller must cede control
// to the provider's hosted page, Completed means the stub path finished
// synchronously.
type DispatchResponse struct {
	URL       string `json:"url,omitempty"`
	Completed bool   `json:"completed"`
	Provider  string `json:"provider"`
}

// StatusResponse is the provider-reported state of an external payment
type StatusResponse struct {
	Status string `json:"status"`
}

// RedirectParams are the query parameters appended to the terminal page URL
// when redirecting the user after a provider callback
type RedirectParams struct {
	Status string
	Ref    string
}
