package repo

import "errors"

var (
	// ErrSaleNotFound is returned when a sale is not found in the repository.
	ErrSaleNotFound = errors.New("sale not found")

	// ErrStockItemNotFound is returned when a stock item is not found in the repository.
	ErrStockItemNotFound = errors.New("stock item not found")

	// ErrPaymentNotFound is returned when a payment is not found in the repository.
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrUserNotFound is returned when a user is not found in the repository.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicatedValueUnique is returned when an insert violates a unique constraint.
	ErrDuplicatedValueUnique = errors.New("duplicated value in unique column")
)
