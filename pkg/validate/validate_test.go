package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type priceHolder struct {
	Price float64 `validate:"price"`
}

func TestPriceRule(t *testing.T) {
	testCases := []struct {
		name  string
		price float64
		valid bool
	}{
		{"simple price", 2.50, true},
		{"integer price", 150, true},
		{"max integer digits", 99999999.99, true},
		{"zero", 0, false},
		{"negative", -1.50, false},
		{"too many integer digits", 100000000, false},
		{"three decimal places", 2.505, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			details := Struct(priceHolder{Price: tc.price})
			if tc.valid {
				assert.Nil(t, details)
			} else {
				assert.NotEmpty(t, details)
			}
		})
	}
}

type phoneHolder struct {
	Phone string `validate:"omitempty,phone"`
}

func TestPhoneRule(t *testing.T) {
	testCases := []struct {
		name  string
		phone string
		valid bool
	}{
		{"empty is allowed", "", true},
		{"ten digits", "9876543210", true},
		{"with plus prefix", "+919876543210", true},
		{"too short", "12345", false},
		{"letters", "98765abcde", false},
		{"plus in middle", "98765+43210", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			details := Struct(phoneHolder{Phone: tc.phone})
			if tc.valid {
				assert.Nil(t, details)
			} else {
				assert.NotEmpty(t, details)
			}
		})
	}
}
