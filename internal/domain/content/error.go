package content

import "errors"

var (
	ErrDuplicateProductID = errors.New("duplicate product id")
	ErrInvalidCategory    = errors.New("invalid product category")
)
