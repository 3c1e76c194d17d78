package settings

type FirstDayResponse struct {
	FirstDayOfMonth int `json:"first_day_of_month"`
}

type UpdateFirstDayRequest struct {
	FirstDayOfMonth int `json:"first_day_of_month" validate:"required,min=1,max=31"`
}

type UpdateAPIKeyRequest struct {
	APIKey string `json:"api_key" validate:"required"`
}

// APIKeyStatusResponse only reports whether a credential is configured; the
// secret itself is never echoed back.
type APIKeyStatusResponse struct {
	Configured bool `json:"configured"`
}
