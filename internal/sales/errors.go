package sales

import "errors"

var (
	ErrValidation  = errors.New("validation")
	ErrOverpayment = errors.New("amount received exceeds order total")

	ErrEmptyOrder     = errors.New("order is empty")
	ErrNoTrousers     = errors.New("order has no trousers to receive fabric for")
	ErrPaymentMethod  = errors.New("payment method is required when an amount is received")
	ErrNonPositive    = errors.New("amount must be positive")
	ErrRowsMismatched = errors.New("rows belong to different orders")
)
