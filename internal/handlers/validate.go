package handlers

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator registers the byte-length and no-space rules used by request
// bodies. The built-in max tag counts runes; limits here are in bytes.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len(fl.Field().String()) <= n
	})
	v.RegisterValidation("nospace", func(fl validator.FieldLevel) bool {
		return !strings.Contains(fl.Field().String(), " ")
	})
	return v
}

type usernameInput struct {
	Username string `json:"username" validate:"maxbytes=32,nospace"`
}

type postInput struct {
	UserID  string `json:"user_id"`
	Message string `json:"message" validate:"maxbytes=256"`
}
