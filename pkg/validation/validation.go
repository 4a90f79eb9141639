package validation

import (
	"context"
	"sync"

	"github.com/go-playground/mold/v4"
	"github.com/go-playground/mold/v4/modifiers"
	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	conform      *mold.Transformer
	onceValidate sync.Once
	onceConform  sync.Once
)

func Validate() *validator.Validate {
	onceValidate.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	return validate
}

func Conform() *mold.Transformer {
	onceConform.Do(func() {
		conform = modifiers.New()
	})

	return conform
}

// Struct applies `mod` tags and then `validate` tags to v, which must be a pointer.
func Struct(ctx context.Context, v interface{}) error {
	if err := Conform().Struct(ctx, v); err != nil {
		return err
	}

	return Validate().Struct(v)
}
