package checklist

import (
	"testing"

	"github.com/google/uuid"
)

func TestFingerprintOrderIndependent(t *testing.T) {
	a := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	b := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	if Fingerprint([]uuid.UUID{a, b}) != Fingerprint([]uuid.UUID{b, a}) {
		t.Error("fingerprint must not depend on linking order")
	}
}

func TestFingerprintEmpty(t *testing.T) {
	if got := Fingerprint(nil); got != "" {
		t.Errorf("Fingerprint(nil) = %q, want empty", got)
	}
}

func TestFingerprintChangesWithSet(t *testing.T) {
	a := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	b := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	one := Fingerprint([]uuid.UUID{a})
	two := Fingerprint([]uuid.UUID{a, b})
	if one == two {
		t.Error("adding a reference must change the fingerprint")
	}
}

func TestValidateValue(t *testing.T) {
	tests := []struct {
		name    string
		def     FieldDef
		value   string
		wantErr bool
	}{
		{"text accepts anything", FieldDef{Key: "f", Kind: KindText}, "whatever", false},
		{"valid date", FieldDef{Key: "f", Kind: KindDate}, "2026-09-01", false},
		{"invalid date", FieldDef{Key: "f", Kind: KindDate}, "01/09/2026", true},
		{"valid choice", FieldDef{Key: "f", Kind: KindChoice, Options: []string{"yes", "no"}}, "yes", false},
		{"invalid choice", FieldDef{Key: "f", Kind: KindChoice, Options: []string{"yes", "no"}}, "maybe", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateValue(tt.def, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateValue() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
