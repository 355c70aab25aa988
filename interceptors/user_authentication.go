package interceptors

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/seftechub/checkout.api.seftechub.com/config"
	"github.com/seftechub/checkout.api.seftechub.com/helpers"
	"github.com/seftechub/checkout.api.seftechub.com/models"
	"github.com/seftechub/checkout.api.seftechub.com/utils"
)

// UserAuthenticationInterceptor contains the config needed to resolve bearer
// tokens against the identity API
type UserAuthenticationInterceptor struct {
	Config config.Config
}

// UserAuthenticationIntercept resolves the bearer token on the request to an
// authenticated user and stores the user details in the request context.
// Missing or unresolvable tokens are rejected with the failure reason.
func (uai UserAuthenticationInterceptor) UserAuthenticationIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := helpers.GetBearerToken(r)
		if token == "" {
			log.ErrorR(r, fmt.Errorf("UserAuthenticationInterceptor unauthorised: no bearer token supplied"))
			m := models.NotificationResponse{Success: false, Error: "missing bearer token"}
			utils.WriteJSONWithStatus(w, r, m, http.StatusBadRequest)
			return
		}

		userDetails, err := uai.getUserDetails(token)
		if err != nil {
			log.ErrorR(r, fmt.Errorf("UserAuthenticationInterceptor error resolving user: [%v]", err))
			m := models.NotificationResponse{Success: false, Error: fmt.Sprintf("invalid bearer token: %v", err)}
			utils.WriteJSONWithStatus(w, r, m, http.StatusBadRequest)
			return
		}

		// Store user details in context to use later in the handler
		ctx := context.WithValue(r.Context(), helpers.ContextKeyUserDetails, *userDetails)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getUserDetails verifies the token with the identity API and returns the
// acting user
func (uai UserAuthenticationInterceptor) getUserDetails(token string) (*models.AuthUserDetails, error) {
	request, err := http.NewRequest("GET", uai.Config.IdentityAPIURL+"/user", nil)
	if err != nil {
		return nil, fmt.Errorf("error generating request for identity API: [%v]", err)
	}

	request.Header.Add("accept", "application/json")
	request.Header.Add("authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("error sending request to identity API: [%v]", err)
	}

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response from identity API: [%v]", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error status [%v] back from identity API", resp.StatusCode)
	}

	userDetails := &models.AuthUserDetails{}
	err = json.Unmarshal(body, userDetails)
	if err != nil {
		return nil, fmt.Errorf("error reading response from identity API: [%v]", err)
	}

	if userDetails.Id == "" {
		return nil, fmt.Errorf("no user id returned from identity API")
	}

	return userDetails, nil
}
