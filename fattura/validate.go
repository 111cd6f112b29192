package fattura

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("taxid", func(fl validator.FieldLevel) bool {
		return validTaxID(fl.Field().String())
	})
	return v
}

// validTaxID accepts a two-letter uppercase country prefix followed by a non-empty code body.
func validTaxID(s string) bool {
	if len(s) < 3 {
		return false
	}
	for i := 0; i < 2; i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

// Validate checks the shape invariants a caller must guarantee before handing a
// document to the codec. The codec itself never calls it: rendering stays total
// over any FiscalDocument value.
func Validate(doc FiscalDocument) error {
	var fields []FieldError

	if err := validate.Struct(doc); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			fields = append(fields, FieldError{
				Field: fieldPath(fe.Namespace()),
				Rule:  fe.Tag(),
				Value: fe.Value(),
			})
		}
	}

	amounts := []struct {
		name  string
		value Money
	}{
		{"totalNet", doc.TotalNet},
		{"totalTax", doc.TotalTax},
		{"totalGross", doc.TotalGross},
	}
	for _, a := range amounts {
		if a.value.IsNegative() {
			fields = append(fields, FieldError{
				Field:   a.name,
				Rule:    "gte=0",
				Value:   a.value.String(),
				Message: "amount must not be negative",
			})
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
