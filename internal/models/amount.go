package models

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultMaxAmount is the largest amount accepted for a single budget or expense.
var DefaultMaxAmount = decimal.NewFromInt(math.MaxInt32)

// ValidateAmount verifies that an expense amount is positive and not larger than max.
func ValidateAmount(amount, max decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: %w", ErrValidation, ErrExpenseAmountNotPositive)
	}

	if amount.GreaterThan(max) {
		return fmt.Errorf("%w: %s is larger than %s", ErrAmountOutOfRange, amount, max)
	}

	return nil
}

// ValidateBudgetAmount verifies that a budget amount is not negative and not larger than max.
func ValidateBudgetAmount(amount, max decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %w", ErrValidation, ErrBudgetAmountNegative)
	}

	if amount.GreaterThan(max) {
		return fmt.Errorf("%w: %s is larger than %s", ErrAmountOutOfRange, amount, max)
	}

	return nil
}

// ValidateDescription returns the trimmed description or an error if it is empty.
func ValidateDescription(description string) (string, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return "", fmt.Errorf("%w: %w", ErrValidation, ErrExpenseDescriptionRequired)
	}

	return description, nil
}
