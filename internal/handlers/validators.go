package handlers

import (
	"errors"
	"reflect"
	"strings"

	"github.com/SscSPs/wallet_api/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs the custom binding tags used by the request DTOs.
// It must run before any route binds a request.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not go-playground/validator")
	}
	v.RegisterTagNameFunc(wireFieldName)
	return v.RegisterValidation("walletdate", validateWalletDate)
}

// wireFieldName reports fields by the name clients send: the json key, or the uri segment.
func wireFieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "uri"} {
		name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return fld.Name
}

// validateWalletDate accepts every date form the service can normalize.
func validateWalletDate(fl validator.FieldLevel) bool {
	_, err := domain.NormalizeDate(fl.Field().String())
	return err == nil
}
