package httpserver

import (
	"errors"

	"github.com/ddd-patterns/backend/domain"
	"github.com/ddd-patterns/backend/domain/checkout"
	"github.com/ddd-patterns/backend/domain/customer"
	"github.com/ddd-patterns/backend/domain/product"
	"github.com/ddd-patterns/backend/pkg/apperror"
)

var domainRuleErrors = []error{
	customer.ErrIDRequired,
	customer.ErrNameRequired,
	customer.ErrAddressMandatory,
	customer.ErrStreetRequired,
	customer.ErrNumberRequired,
	customer.ErrCityRequired,
	customer.ErrZipcodeRequired,
	product.ErrIDRequired,
	product.ErrNameRequired,
	product.ErrInvalidPrice,
	checkout.ErrIDRequired,
	checkout.ErrCustomerIDRequired,
	checkout.ErrItemsRequired,
	checkout.ErrItemIDRequired,
	checkout.ErrItemNameRequired,
	checkout.ErrProductIDRequired,
	checkout.ErrInvalidQuantity,
	checkout.ErrInvalidItemPrice,
}

// toAppError maps service errors onto HTTP application errors.
func toAppError(err error) apperror.Error {
	switch {
	case errors.Is(err, domain.ErrDispatchFailed):
		return apperror.ErrEventDispatch(err)
	case errors.Is(err, customer.ErrNotFound),
		errors.Is(err, product.ErrNotFound),
		errors.Is(err, checkout.ErrNotFound):
		return apperror.ErrEntityNotFound(err)
	case errors.Is(err, customer.ErrAlreadyExists),
		errors.Is(err, product.ErrAlreadyExists),
		errors.Is(err, checkout.ErrAlreadyExists):
		return apperror.ErrEntityConflict(err)
	}

	for _, rule := range domainRuleErrors {
		if errors.Is(err, rule) {
			return apperror.ErrDomainRule(err)
		}
	}

	return apperror.ErrInternalServer(err)
}
