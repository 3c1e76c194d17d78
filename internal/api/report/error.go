package report

import "duitai/pkg/response"

var ErrInvalidMonth = response.NewError(400, "month must be in YYYY-MM format")
