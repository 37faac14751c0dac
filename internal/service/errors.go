package service

import (
	"errors"

	"uniforms-pos/internal/repository/xlsx"
	"uniforms-pos/internal/sales"
)

var ErrNotFound = errors.New("not found")

var (
	ErrDecode      = errors.New("decode")
	ErrValidation  = sales.ErrValidation
	ErrOverpayment = sales.ErrOverpayment

	// ErrStoreUnreadable means the sales workbook exists but cannot be
	// parsed. Nothing is written until the store is reset.
	ErrStoreUnreadable = xlsx.ErrUnreadable

	ErrConfirmationRequired = errors.New("explicit confirmation required")
)
