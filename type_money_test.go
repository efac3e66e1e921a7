package renda

import (
	"encoding/json"
	"testing"
)

func TestMoney_Arithmetic(t *testing.T) {
	a := BRL(100000)
	b := BRL(2500.50)

	if got := a.Add(b); !almostEqual(got.AsFloat(), 102500.50, 1e-9) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); !almostEqual(got.AsFloat(), 97499.50, 1e-9) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.MulFactor(0.225); !almostEqual(got.AsFloat(), 22500, 1e-9) {
		t.Errorf("MulFactor = %v", got)
	}
	if !a.GreaterThan(b) || b.GreaterThan(a) {
		t.Error("comparison operators inconsistent")
	}
}

func TestMoney_WeakCurrency(t *testing.T) {
	// The empty currency is weak: it adopts the other operand's.
	got := M(100, "").Add(BRL(50))
	if got.Currency() != "BRL" {
		t.Errorf("Currency = %q, want BRL", got.Currency())
	}
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	m := BRL(1234.56)
	b, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var back Money
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !back.Equal(m) {
		t.Errorf("round trip = %v, want %v", back, m)
	}
}

func TestMoney_SignedString(t *testing.T) {
	if got := BRL(0).SignedString(); got != "-" {
		t.Errorf("zero SignedString = %q, want -", got)
	}
	if got := BRL(10).SignedString(); got[0] != '+' {
		t.Errorf("positive SignedString = %q, want leading +", got)
	}
}
