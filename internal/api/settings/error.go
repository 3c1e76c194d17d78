package settings

import "duitai/pkg/response"

var (
	ErrInvalidFirstDay = response.NewError(400, "first day of month must be between 1 and 31")
	ErrAPIKeyRequired  = response.NewError(400, "api key is required")
)
