package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorDetail struct {
	Code    string       `json:"code,omitempty"`
	Message string       `json:"message"`
	Field   string       `json:"field,omitempty"`
	Details []FieldError `json:"details,omitempty"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type TokenRequest struct {
	Username string `json:"username"`
}

type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

// money renders an amount with two decimals as a JSON number.
func money(v float64) json.Number {
	return json.Number(decimal.NewFromFloat(v).StringFixed(2))
}

func rate(v float64) json.Number {
	return json.Number(decimal.NewFromFloat(v).String())
}
