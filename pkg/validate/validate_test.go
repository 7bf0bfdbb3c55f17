package validate_test

import (
	"testing"

	"github.com/Austinkuria/E-commerce-Site/pkg/validate"
)

type checkoutInput struct {
	Address    string `json:"address"     validate:"required,address,max=255"`
	City       string `json:"city"        validate:"required,alpha_space,max=100"`
	PostalCode string `json:"postal_code" validate:"required,digits_between=4,10"`
	Phone      string `json:"phone"       validate:"nullable,phone"`
}

func TestValidCheckoutInput(t *testing.T) {
	errs := validate.Struct(checkoutInput{
		Address:    "123 Main St, Apt 4B",
		City:       "New York",
		PostalCode: "10001",
		Phone:      "+1234567890",
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestPhoneIsOptional(t *testing.T) {
	errs := validate.Struct(checkoutInput{
		Address:    "5 High Street",
		City:       "Leeds",
		PostalCode: "443001",
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors when phone omitted, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(checkoutInput{})
	for _, field := range []string{"address", "city", "postal_code"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected %s to be required", field)
		}
	}
	if _, ok := errs["phone"]; ok {
		t.Error("phone is nullable and must not fail when empty")
	}
}

func TestCityRejectsDigits(t *testing.T) {
	errs := validate.Struct(checkoutInput{
		Address:    "123 Main St",
		City:       "New York 7",
		PostalCode: "10001",
	})
	if _, ok := errs["city"]; !ok {
		t.Error("expected city with digits to fail alpha_space")
	}
}

func TestPostalCodeDigitsBetween(t *testing.T) {
	cases := map[string]bool{
		"1234":        true,
		"1234567890":  true,
		"123":         false, // too short
		"12345678901": false, // too long
		"12a45":       false, // not digits
	}
	for code, ok := range cases {
		errs := validate.Struct(checkoutInput{
			Address:    "123 Main St",
			City:       "Pune",
			PostalCode: code,
		})
		if _, failed := errs["postal_code"]; failed == ok {
			t.Errorf("postal_code %q: expected valid=%v, errs=%v", code, ok, errs)
		}
	}
}

func TestPhoneFormat(t *testing.T) {
	cases := map[string]bool{
		"+1234567890":       true,
		"0123456789":        true,
		"+123456789012345":  true,
		"+1234567890123456": false, // 16 digits
		"123456":            false, // too short
		"+12-345-67890":     false, // separators not allowed
	}
	for phone, ok := range cases {
		errs := validate.Struct(checkoutInput{
			Address:    "123 Main St",
			City:       "Pune",
			PostalCode: "10001",
			Phone:      phone,
		})
		if _, failed := errs["phone"]; failed == ok {
			t.Errorf("phone %q: expected valid=%v, errs=%v", phone, ok, errs)
		}
	}
}

func TestAddressCharacters(t *testing.T) {
	errs := validate.Struct(checkoutInput{
		Address:    "123 Main St, Apt 4B.",
		City:       "Pune",
		PostalCode: "10001",
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected commas/periods/dashes allowed in address, got: %v", errs)
	}

	errs = validate.Struct(checkoutInput{
		Address:    "123 Main St #4",
		City:       "Pune",
		PostalCode: "10001",
	})
	if _, ok := errs["address"]; !ok {
		t.Error("expected '#' to be rejected in address")
	}
}

func TestConfirmedRule(t *testing.T) {
	type in struct {
		Password             string `json:"password"              validate:"required,min=8,confirmed"`
		PasswordConfirmation string `json:"password_confirmation"`
	}
	errs := validate.Struct(in{Password: "secret123", PasswordConfirmation: "secret123"})
	if validate.HasErrors(errs) {
		t.Errorf("expected matching confirmation to pass, got: %v", errs)
	}
	errs = validate.Struct(in{Password: "secret123", PasswordConfirmation: "other"})
	if _, ok := errs["password"]; !ok {
		t.Error("expected mismatched confirmation to fail")
	}
}

func TestInRule(t *testing.T) {
	type in struct {
		Method string `json:"payment_method" validate:"required,in=cod,card,mpesa"`
	}
	if errs := validate.Struct(in{Method: "card"}); validate.HasErrors(errs) {
		t.Errorf("expected card to be accepted, got: %v", errs)
	}
	if errs := validate.Struct(in{Method: "crypto"}); !validate.HasErrors(errs) {
		t.Error("expected crypto to be rejected")
	}
}
