// internal/chain/validation.go
package chain

import (
	"stepchain/internal/common/errors"
	"stepchain/internal/common/validation"
	"stepchain/internal/models"
)

const (
	idMinLength   = 1
	idMaxLength   = 1000000
	nameMinLength = 1
	nameMaxLength = 100
)

func payloadSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"id", "name"},
		"properties": map[string]interface{}{
			"id": map[string]interface{}{
				"type":      "string",
				"minLength": idMinLength,
				"maxLength": idMaxLength,
			},
			"name": map[string]interface{}{
				"type":      "string",
				"minLength": nameMinLength,
				"maxLength": nameMaxLength,
			},
		},
	}
}

// ValidatePayload checks the length bounds on a payload. Pure, no I/O; runs
// before every outbound call so invalid input never costs a network trip.
func ValidatePayload(p models.Payload) error {
	result, err := validation.Validate(p, payloadSchema())
	if err != nil {
		return errors.NewValidationError(err.Error())
	}
	if !result.Valid {
		return errors.NewValidationError(result.Message())
	}
	return nil
}
