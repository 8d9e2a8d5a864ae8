package client

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/go-querystring/query"

	"github.com/fivetwenty-io/harvest-client/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrInvalidParams  = errors.New("invalid parameters")
	ErrParamsRequired = errors.New("parameters are required")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateParams checks the validate tags of params. A nil pointer is
// rejected since every caller sends params as the request body.
func validateParams(params interface{}) error {
	if isNil(params) {
		return ErrParamsRequired
	}

	err := validate.Struct(params)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}

	return nil
}

// validateOptional validates params only when present.
func validateOptional(params interface{}) error {
	if isNil(params) {
		return nil
	}

	return validateParams(params)
}

// encodeQuery turns a params struct carrying url tags into query values.
// A nil pointer yields no values.
func encodeQuery(params interface{}) (url.Values, error) {
	if isNil(params) {
		return nil, nil
	}

	values, err := query.Values(params)
	if err != nil {
		return nil, fmt.Errorf("encoding query: %w", err)
	}

	return values, nil
}

// onBehalfOf returns the On-Behalf-Of header for userID, or nil when empty.
func onBehalfOf(userID string) map[string]string {
	if userID == "" {
		return nil
	}

	return map[string]string{constants.HeaderOnBehalfOf: userID}
}

// onBehalfOfID is onBehalfOf for the numeric user IDs of the v2 endpoints.
func onBehalfOfID(userID int64) map[string]string {
	if userID == 0 {
		return nil
	}

	return onBehalfOf(strconv.FormatInt(userID, 10))
}

func idPath(prefix string, id int64) string {
	return prefix + "/" + strconv.FormatInt(id, 10)
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)

	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
