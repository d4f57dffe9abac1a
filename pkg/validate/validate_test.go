package validate_test

import (
	"testing"

	"papelaria/pkg/validate"
)

type userInput struct {
	Name     string  `json:"name"     validate:"required,min=2,max=100"`
	Email    string  `json:"email"    validate:"required,email"`
	Price    float64 `json:"price"    validate:"gte=0"`
	Quantity int     `json:"quantity" validate:"nullable,gt=0"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(userInput{
		Name:     "Ana Souza",
		Email:    "ana@example.com",
		Price:    24.9,
		Quantity: 0, // nullable — allowed to be empty
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(userInput{})
	if !validate.HasErrors(errs) {
		t.Error("expected required errors")
	}
	if _, ok := errs["name"]; !ok {
		t.Error("expected name to be required")
	}
	if _, ok := errs["email"]; !ok {
		t.Error("expected email to be required")
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	errs := validate.Struct(in{Email: "not-an-email"})
	if _, ok := errs["email"]; !ok {
		t.Error("expected email validation error")
	}
	errs = validate.Struct(in{Email: "valid@example.com"})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestStringLengthRules(t *testing.T) {
	errs := validate.Struct(userInput{Name: "A", Email: "a@x.com"})
	if _, ok := errs["name"]; !ok {
		t.Error("expected min length error for one-char name")
	}

	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}
	errs = validate.Struct(userInput{Name: string(long), Email: "a@x.com"})
	if _, ok := errs["name"]; !ok {
		t.Error("expected max length error for 101-char name")
	}
}

func TestNumericBounds(t *testing.T) {
	errs := validate.Struct(userInput{Name: "Ana", Email: "a@x.com", Price: -1})
	if _, ok := errs["price"]; !ok {
		t.Error("expected gte error for negative price")
	}

	errs = validate.Struct(userInput{Name: "Ana", Email: "a@x.com", Quantity: -3})
	if _, ok := errs["quantity"]; !ok {
		t.Error("expected gt error for negative quantity")
	}
}

func TestBetweenRule(t *testing.T) {
	type in struct {
		Score float64 `json:"score" validate:"required,between=0,100"`
	}
	if errs := validate.Struct(in{Score: 101}); !validate.HasErrors(errs) {
		t.Error("expected between error for 101")
	}
	if errs := validate.Struct(in{Score: 55}); validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestJSONFieldNamesInMessages(t *testing.T) {
	type in struct {
		UserID uint `json:"userId" validate:"required"`
	}
	errs := validate.Struct(in{})
	if _, ok := errs["userId"]; !ok {
		t.Errorf("expected error keyed by json name, got: %v", errs)
	}
}
