package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Внутренние ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect env variable")
	ErrUnknownCatalogSource = fmt.Errorf("unknown catalog source")

	// 400 Bad Request
	ErrStatusBadRequest = fmt.Errorf("bad request")
	ErrInvalidProductID = fmt.Errorf("invalid product id")
	ErrInvalidQuantity  = fmt.Errorf("quantity must be a positive integer")
	ErrInvalidPrice     = fmt.Errorf("invalid price value")
	ErrInvalidRating    = fmt.Errorf("invalid rating value")
	ErrEmptyCart        = fmt.Errorf("cart is empty")

	// 404 Not Found
	ErrProductNotFound = fmt.Errorf("product not found")
	ErrOrderNotFound   = fmt.Errorf("order not found")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
