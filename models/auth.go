// models/auth.go
package models

import "encoding/json"

// Response is the generic API response envelope.
type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// OTPCode is a submitted one-time password. Clients send the code either as
// a JSON string or as a bare number; both decode to the same string so the
// comparison against the stored code is always string-to-string.
type OTPCode string

func (o *OTPCode) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*o = OTPCode(n.String())
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*o = OTPCode(s)
	return nil
}

// VerifyOTPRequest carries the code submitted by the login form.
type VerifyOTPRequest struct {
	OTP OTPCode `json:"otp" validate:"required"`
}

// VerifyTokenRequest carries a bearer token for standalone verification.
type VerifyTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// TokenResponse is returned after a successful OTP verification.
type TokenResponse struct {
	Token string `json:"token"`
}
