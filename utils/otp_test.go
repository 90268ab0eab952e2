package utils

import (
	"strconv"
	"testing"
)

func TestGenerateOTPRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := GenerateOTP()
		if err != nil {
			t.Fatalf("GenerateOTP returned error: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("got code %q, want 6 digits", code)
		}
		n, err := strconv.Atoi(code)
		if err != nil {
			t.Fatalf("got non-numeric code %q", code)
		}
		if n < 100000 || n > 999999 {
			t.Fatalf("got code %d, want it within 100000-999999", n)
		}
	}
}
