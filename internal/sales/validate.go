package sales

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"uniforms-pos/internal/models"
)

var validate = validator.New()

// HumanizeValidationErrors joins field errors as "Field: tag=param; ...".
func HumanizeValidationErrors(errs validator.ValidationErrors) string {
	var b strings.Builder
	for _, fe := range errs {
		if fe.Param() != "" {
			fmt.Fprintf(&b, "%s: %s=%s; ", fe.Namespace(), fe.Tag(), fe.Param())
		} else {
			fmt.Fprintf(&b, "%s: %s; ", fe.Namespace(), fe.Tag())
		}
	}
	s := b.String()
	if len(s) > 2 {
		s = s[:len(s)-2]
	}
	return s
}

func validateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fmt.Errorf("%w: %s", ErrValidation, HumanizeValidationErrors(verrs))
		}
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

func ValidateLineItem(item models.LineItem) error {
	if err := validateStruct(item); err != nil {
		return err
	}
	if item.ShirtQuantity == 0 && item.TrouserQuantity == 0 {
		return fmt.Errorf("%w: line item has no garments", ErrValidation)
	}
	if item.ShirtQuantity > 0 && !models.ValidSize(item.ShirtSize) {
		return fmt.Errorf("%w: shirt size %q is not one of %s",
			ErrValidation, item.ShirtSize, strings.Join(models.Sizes, ", "))
	}
	if item.ChildKind == models.Girl && item.HasTrousers() {
		return fmt.Errorf("%w: girl items cannot include trousers", ErrValidation)
	}
	if item.HasTrousers() && (item.Measurements == nil || item.Measurements.Length <= 0) {
		return fmt.Errorf("%w: trouser length is required", ErrValidation)
	}
	return nil
}

func ValidateCustomer(c models.Customer) error {
	if err := validateStruct(c); err != nil {
		return err
	}
	if strings.TrimSpace(c.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrValidation)
	}
	if strings.TrimSpace(c.PrimaryPhone) == "" {
		return fmt.Errorf("%w: primary phone is required", ErrValidation)
	}
	return nil
}

func ValidateDraft(d *models.OrderDraft) error {
	if err := ValidateCustomer(d.Customer); err != nil {
		return err
	}
	if len(d.Items) == 0 {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyOrder)
	}
	for i, it := range d.Items {
		if err := ValidateLineItem(it); err != nil {
			return fmt.Errorf("item %d: %w", i+1, err)
		}
	}
	if OrderTotal(d) <= 0 {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyOrder)
	}
	return nil
}

func ValidatePaymentMethod(m models.PaymentMethod) error {
	switch m {
	case models.Cash, models.Transfer:
		return nil
	case "":
		return fmt.Errorf("%w: %w", ErrValidation, ErrPaymentMethod)
	default:
		return fmt.Errorf("%w: unknown payment method %q", ErrValidation, m)
	}
}

// ValidatePayment checks the closing payment against an order total and
// its number of trousers.
func ValidatePayment(p models.Payment, total int64, trousers int) error {
	if err := validateStruct(p); err != nil {
		return err
	}
	if p.AmountReceived > 0 || p.PaymentMethod != "" {
		if err := ValidatePaymentMethod(p.PaymentMethod); err != nil {
			return err
		}
	}
	if p.AmountReceived > total {
		return fmt.Errorf("%w: received %d, total %d", ErrOverpayment, p.AmountReceived, total)
	}
	if p.FabricDelivered > 0 && trousers == 0 {
		return fmt.Errorf("%w: %w", ErrValidation, ErrNoTrousers)
	}
	return nil
}
