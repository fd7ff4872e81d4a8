package entities

import (
	"errors"
	"testing"
)

func TestNewApplicant(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		a, err := NewApplicant(" 12345678900 ", " Maria Souza ", 5000, 30)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.DocumentNumber != "12345678900" || a.Name != "Maria Souza" {
			t.Fatalf("expected trimmed fields, got %+v", a)
		}
		if a.MonthlyIncome != 5000 || a.Age != 30 {
			t.Fatalf("unexpected fields: %+v", a)
		}
	})

	t.Run("zero income is allowed", func(t *testing.T) {
		if _, err := NewApplicant("123", "Maria", 0, 30); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	cases := []struct {
		name     string
		document string
		fullName string
		income   float64
		age      int
	}{
		{name: "blank document", document: "   ", fullName: "Maria", income: 1000, age: 30},
		{name: "blank name", document: "123", fullName: "", income: 1000, age: 30},
		{name: "negative income", document: "123", fullName: "Maria", income: -1, age: 30},
		{name: "negative age", document: "123", fullName: "Maria", income: 1000, age: -1},
		{name: "age above 120", document: "123", fullName: "Maria", income: 1000, age: 121},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewApplicant(tc.document, tc.fullName, tc.income, tc.age)
			if !errors.Is(err, ErrInvalidApplicant) {
				t.Fatalf("expected ErrInvalidApplicant, got %v", err)
			}
		})
	}
}
