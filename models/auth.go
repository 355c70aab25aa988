package models

// AuthUserDetails is a representation of the acting user resolved from the
// bearer token on a request
type AuthUserDetails struct {
	Id    string `json:"id"`
	Email string `json:"email"`
}
