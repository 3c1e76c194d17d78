package finance

import "duitai/pkg/response"

var (
	ErrTransactionNotFound    = response.NewError(404, "transaction not found")
	ErrInvalidTransactionType = response.NewError(400, "invalid transaction type")
	ErrInvalidAmount          = response.NewError(400, "invalid transaction amount")
	ErrWalletNotFound         = response.NewError(404, "wallet not found")
	ErrWalletAlreadyExists    = response.NewError(409, "wallet already exists")
	ErrWalletNameRequired     = response.NewError(400, "wallet name is required")
	ErrProtectedWallet        = response.NewError(400, "the main wallet cannot be deleted")
	ErrCategoryAlreadyExists  = response.NewError(409, "category already exists")
	ErrCategoryNotFound       = response.NewError(404, "category not found")
	ErrProtectedCategory      = response.NewError(400, "the default category cannot be deleted")
	ErrConfirmationRequired   = response.NewError(400, "confirmation is required for this operation")
)
