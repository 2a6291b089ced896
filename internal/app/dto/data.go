package dto

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/exception"
)

var (
	Validate = validator.New()
	trans    ut.Translator
)

var ErrInvalidRequest = exception.New("INVALID_REQUEST", http.StatusBadRequest, "invalid request")

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

type Response struct {
	Message string `json:"message"`
}

// Document is a binary payload such as a rendered boarding pass.
type Document struct {
	Filename    string
	ContentType string
	Body        []byte
}

// SessionRef carries the wizard session id taken from the URL path.
type SessionRef struct {
	SessionID string `json:"-" validate:"required,uuid"`
}

func (s *SessionRef) SetSessionID(id string) {
	s.SessionID = id
}

func (s *SessionRef) Bind(r *http.Request) error {
	return validateRequest(s)
}

// ClientRef carries the caller's client id taken from the X-Client-Id header.
type ClientRef struct {
	ClientID string `json:"-"`
}

func (c *ClientRef) SetClientID(id string) {
	c.ClientID = id
}

func (c *ClientRef) Bind(r *http.Request) error {
	return nil
}

func InitValidator() error {
	uni := ut.New(en.New(), en.New())
	trans, _ = uni.GetTranslator("en")

	err := enTranslations.RegisterDefaultTranslations(Validate, trans)
	if err != nil {
		return err
	}

	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return nil
}

func ValidateSingleError(req interface{}) error {
	if err := Validate.Struct(req); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			if trans == nil {
				return errors.New(ve[0].Error())
			}
			return errors.New(ve[0].Translate(trans))
		}
		return err
	}
	return nil
}

func validateRequest(req interface{}) error {
	if err := ValidateSingleError(req); err != nil {
		return ErrInvalidRequest.WithMessage("%s", err.Error())
	}

	return nil
}
