package helpers

import (
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitGetBearerToken(t *testing.T) {
	Convey("Bearer token supplied", t, func() {
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("Authorization", "Bearer token123")
		So(GetBearerToken(req), ShouldEqual, "token123")
	})

	Convey("No Authorization header", t, func() {
		req := httptest.NewRequest("GET", "/test", nil)
		So(GetBearerToken(req), ShouldBeEmpty)
	})

	Convey("Wrong scheme", t, func() {
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		So(GetBearerToken(req), ShouldBeEmpty)
	})
}
