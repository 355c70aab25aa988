package handlers

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/companieshouse/chs.go/log"
)

// The terminal pages are pure display states: rendering is derived entirely
// from the URL and no verification call is made to the provider.

var successTemplate = template.Must(template.New("payment-success").Parse(`<!DOCTYPE html>
<html>
<head><title>Payment Successful</title></head>
<body>
<h1>Payment Successful</h1>
<p>Thank you for your payment.</p>
{{if .SessionID}}<p>Reference: {{.SessionID}}</p>{{end}}
<p><a href="/">Return to dashboard</a></p>
</body>
</html>
`))

var canceledTemplate = template.Must(template.New("payment-canceled").Parse(`<!DOCTYPE html>
<html>
<head><title>Payment Canceled</title></head>
<body>
<h1>Payment Canceled</h1>
<p>Your payment was canceled. You have not been charged.</p>
<p><a href="/checkout">Back to checkout</a></p>
</body>
</html>
`))

// HandlePaymentSuccess renders the successful payment page, echoing the
// session id from the query string for user reference
func HandlePaymentSuccess(w http.ResponseWriter, req *http.Request) {
	sessionID := req.URL.Query().Get("session_id")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := successTemplate.Execute(w, struct{ SessionID string }{SessionID: sessionID})
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error rendering payment success page: [%v]", err))
		return
	}

	log.InfoR(req, "rendered payment success page", log.Data{"session_id": sessionID})
}

// HandlePaymentCanceled renders the canceled payment page
func HandlePaymentCanceled(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := canceledTemplate.Execute(w, nil)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error rendering payment canceled page: [%v]", err))
		return
	}

	log.InfoR(req, "rendered payment canceled page")
}
