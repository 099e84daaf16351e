package http

import (
	"strings"
	"testing"
)

func containsFieldMsg(details []FieldError, field, msg string) bool {
	for _, d := range details {
		if d.Field == field && strings.Contains(d.Message, msg) {
			return true
		}
	}
	return false
}

func TestValidator_Dec2Rule(t *testing.T) {
	cv := NewValidator()

	type in struct {
		Amount float64 `validate:"dec2"`
	}

	valid := []float64{0, 10, 10.5, 10.55, 123456.78, 0.01}
	for _, v := range valid {
		if err := cv.Validate(in{Amount: v}); err != nil {
			t.Fatalf("amount %v should pass dec2, got %v", v, err)
		}
	}

	invalid := []float64{10.999, 0.001, 123.456}
	for _, v := range invalid {
		if err := cv.Validate(in{Amount: v}); err == nil {
			t.Fatalf("amount %v should fail dec2", v)
		}
	}
}

func TestToFieldErrors_Messages(t *testing.T) {
	cv := NewValidator()

	type in struct {
		CustomerID string  `validate:"required,uuid4"`
		Amount     float64 `validate:"required,gt=0,dec2"`
		Type       string  `validate:"required,oneof=EMI LUMP_SUM"`
	}

	err := cv.Validate(in{CustomerID: "nope", Amount: -1, Type: "WIRE"})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	details := ToFieldErrors(err)

	if !containsFieldMsg(details, "CustomerID", "UUID v4") {
		t.Fatalf("missing uuid4 detail: %+v", details)
	}
	if !containsFieldMsg(details, "Amount", "greater than 0") {
		t.Fatalf("missing gt detail: %+v", details)
	}
	if !containsFieldMsg(details, "Type", "one of") {
		t.Fatalf("missing oneof detail: %+v", details)
	}

	err = cv.Validate(in{})
	details = ToFieldErrors(err)
	if !containsFieldMsg(details, "CustomerID", "is required") {
		t.Fatalf("missing required detail: %+v", details)
	}
}
