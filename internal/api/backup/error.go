package backup

import "duitai/pkg/response"

var (
	ErrMalformedBackup = response.NewError(400, "backup file is not a valid snapshot")
	ErrMissingFile     = response.NewError(400, "backup file is required")
)
