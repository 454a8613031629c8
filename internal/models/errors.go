package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrValidation       = errors.New("the request contains invalid data")
	ErrAmountOutOfRange = errors.New("the amount is out of range")

	ErrBudgetDayNotUnique         = errors.New("a budget for this day already exists")
	ErrBudgetAmountNegative       = errors.New("the budget amount must not be negative")
	ErrExpenseAmountNotPositive   = errors.New("the amount must be positive")
	ErrExpenseDescriptionRequired = errors.New("the description must not be empty")
)
