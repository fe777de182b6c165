package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

type entry struct {
	Type string `validate:"required,transaction_type"`
	Date string `validate:"omitempty,isodate"`
}

func newValidate() *validator.Validate {
	v := validator.New()
	RegisterOn(v)
	return v
}

func TestTransactionType(t *testing.T) {
	v := newValidate()

	for _, typ := range []string{"income", "expense"} {
		if err := v.Struct(entry{Type: typ}); err != nil {
			t.Errorf("expected %q to be valid, got %v", typ, err)
		}
	}
	for _, typ := range []string{"transfer", "Income", "investment"} {
		if err := v.Struct(entry{Type: typ}); err == nil {
			t.Errorf("expected %q to be rejected", typ)
		}
	}
}

func TestISODate(t *testing.T) {
	v := newValidate()

	valid := []string{"", "2025-01-31", "2024-02-29"}
	for _, d := range valid {
		if err := v.Struct(entry{Type: "income", Date: d}); err != nil {
			t.Errorf("expected date %q to be valid, got %v", d, err)
		}
	}

	invalid := []string{"2025-02-29", "31/01/2025", "2025-1-31", "yesterday"}
	for _, d := range invalid {
		if err := v.Struct(entry{Type: "income", Date: d}); err == nil {
			t.Errorf("expected date %q to be rejected", d)
		}
	}
}
