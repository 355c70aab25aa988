package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/seftechub/checkout.api.seftechub.com/service"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitHandleDispatchPayment(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	Convey("Request body empty", t, func() {
		req, _ := http.NewRequest("POST", "/payments/dispatch", nil)
		w := httptest.NewRecorder()
		HandleDispatchPayment(w, req)
		So(w.Code, ShouldEqual, http.StatusBadRequest)
		So(w.Body.String(), ShouldContainSubstring, `"error":"request body empty"`)
	})

	Convey("Request body invalid", t, func() {
		req := httptest.NewRequest("POST", "/payments/dispatch", strings.NewReader("not json"))
		w := httptest.NewRecorder()
		HandleDispatchPayment(w, req)
		So(w.Code, ShouldEqual, http.StatusBadRequest)
		So(w.Body.String(), ShouldContainSubstring, `"error":"request body invalid"`)
	})

	Convey("Missing provider returns bad request", t, func() {
		dispatchProviders = map[string]service.PaymentProviderService{}

		req := httptest.NewRequest("POST", "/payments/dispatch", strings.NewReader(`{"amount": 19.99, "currency": "USD"}`))
		w := httptest.NewRecorder()
		HandleDispatchPayment(w, req)
		So(w.Code, ShouldEqual, http.StatusBadRequest)
		So(w.Body.String(), ShouldContainSubstring, `"error":"payment provider not supplied"`)
	})

	Convey("Unknown provider returns bad request", t, func() {
		dispatchProviders = map[string]service.PaymentProviderService{}

		req := httptest.NewRequest("POST", "/payments/dispatch", strings.NewReader(`{"amount": 19.99, "currency": "USD", "provider": "barter"}`))
		w := httptest.NewRecorder()
		HandleDispatchPayment(w, req)
		So(w.Code, ShouldEqual, http.StatusBadRequest)
		So(w.Body.String(), ShouldContainSubstring, `"error":"payment provider [barter] not recognised"`)
	})

	Convey("Stub provider completes synchronously", t, func() {
		dispatchProviders = map[string]service.PaymentProviderService{}

		req := httptest.NewRequest("POST", "/payments/dispatch", strings.NewReader(`{"amount": 19.99, "currency": "USD", "provider": "flutterwave"}`))
		w := httptest.NewRecorder()
		HandleDispatchPayment(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)

		var response map[string]interface{}
		So(json.Unmarshal(w.Body.Bytes(), &response), ShouldBeNil)
		So(response["completed"], ShouldBeTrue)
		So(response["provider"], ShouldEqual, "flutterwave")
		So(response["url"], ShouldBeNil)
	})

	Convey("Gateway provider returns the hosted page URL", t, func() {
		mockProvider := service.NewMockPaymentProviderService(mockCtrl)
		dispatchProviders = map[string]service.PaymentProviderService{"stripe": mockProvider}

		mockProvider.EXPECT().CreatePaymentAndGenerateNextURL(gomock.Any(), gomock.Any()).Return("https://checkout.stripe.com/pay/cs_123", service.Success, nil)

		req := httptest.NewRequest("POST", "/payments/dispatch", strings.NewReader(`{"amount": 19.99, "currency": "USD", "provider": "stripe"}`))
		w := httptest.NewRecorder()
		HandleDispatchPayment(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)

		var response map[string]interface{}
		So(json.Unmarshal(w.Body.Bytes(), &response), ShouldBeNil)
		So(response["completed"], ShouldBeFalse)
		So(response["provider"], ShouldEqual, "stripe")
		So(response["url"], ShouldEqual, "https://checkout.stripe.com/pay/cs_123")
	})

	Convey("Provider error returns internal server error", t, func() {
		mockProvider := service.NewMockPaymentProviderService(mockCtrl)
		dispatchProviders = map[string]service.PaymentProviderService{"stripe": mockProvider}

		mockProvider.EXPECT().CreatePaymentAndGenerateNextURL(gomock.Any(), gomock.Any()).Return("", service.Error, errors.New("provider is down"))

		req := httptest.NewRequest("POST", "/payments/dispatch", strings.NewReader(`{"amount": 19.99, "currency": "USD", "provider": "stripe"}`))
		w := httptest.NewRecorder()
		HandleDispatchPayment(w, req)
		So(w.Code, ShouldEqual, http.StatusInternalServerError)
		So(w.Body.String(), ShouldContainSubstring, `"error":"provider is down"`)
	})
}
