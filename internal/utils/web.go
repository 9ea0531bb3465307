package utils

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/mkravets/portfolio-api/internal/errors"
	"github.com/mkravets/portfolio-api/internal/logger"
)

// WriteErrorAndStatusCode maps the error taxonomy onto HTTP status codes.
// Default is 500.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	var statusErr *errors.ErrorWithStatusCode
	if stderrors.As(err, &statusErr) {
		http.Error(w, statusErr.Message, statusErr.StatusCode)
		return
	}
	var validationErr *errors.ValidationError
	if stderrors.As(err, &validationErr) {
		http.Error(w, validationErr.Error(), http.StatusBadRequest)
		return
	}
	var infraErr *errors.InfrastructureError
	if stderrors.As(err, &infraErr) {
		http.Error(w, infraErr.Error(), http.StatusBadGateway)
		return
	}
	if stderrors.Is(err, errors.ErrNotFound) {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	http.Error(w, err.Error(), http.StatusInternalServerError)
}

// DecodeValidate decodes a JSON body and checks required fields.
func DecodeValidate(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug("invalid request body", "error", err)
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: 400}
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(body); err != nil {
		logger.Log.Debug("request body failed validation", "error", err)
		return &errors.ErrorWithStatusCode{Message: "Required fields missing", StatusCode: 400}
	}
	return nil
}
