package filename_test

import (
	"errors"
	"reflect"
	"testing"

	"shuttle/internal/filename"
)

func TestExpandTwoPairs(t *testing.T) {
	exp, err := filename.Expand("PBCC_A_B_C.txt")
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	if !reflect.DeepEqual(exp.Pairs, []string{"PB", "CC"}) {
		t.Fatalf("unexpected pairs: %v", exp.Pairs)
	}
	want := []string{"PB_A_B_C.txt", "CC_A_B_C.txt"}
	if !reflect.DeepEqual(exp.Derived, want) {
		t.Fatalf("unexpected derived names: %v", exp.Derived)
	}
}

func TestExpandCountMatchesPairCount(t *testing.T) {
	exp, err := filename.Expand("PBCCBA_20240101_batch_7.csv")
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	if len(exp.Derived) != 3 {
		t.Fatalf("expected 3 derived names, got %d", len(exp.Derived))
	}
	if exp.Derived[2] != "BA_20240101_batch_7.csv" {
		t.Fatalf("unexpected third derived name %q", exp.Derived[2])
	}
}

func TestExpandLowercasePrefixes(t *testing.T) {
	exp, err := filename.Expand("pbcc_a_b_c.txt")
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	if !reflect.DeepEqual(exp.Derived, []string{"pb_a_b_c.txt", "cc_a_b_c.txt"}) {
		t.Fatalf("unexpected derived names: %v", exp.Derived)
	}
}

func TestExpandFailures(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"odd prefix length", "P_A_B_C.txt"},
		{"single pair", "PB_A_B_C.txt"},
		{"invalid leading character", "PBXX_A_B_C.txt"},
		{"too few segments", "PBCC_A_B.txt"},
		{"too many segments", "PBCC_A_B_C_D.txt"},
		{"empty prefix segment", "_A_B_C.txt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := filename.Expand(tc.input)
			if !errors.Is(err, filename.ErrNotExpandable) {
				t.Fatalf("expected ErrNotExpandable for %q, got %v", tc.input, err)
			}
		})
	}
}

func TestExpandPreservesExtensionlessNames(t *testing.T) {
	exp, err := filename.Expand("CCPB_x_y_z")
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	if !reflect.DeepEqual(exp.Derived, []string{"CC_x_y_z", "PB_x_y_z"}) {
		t.Fatalf("unexpected derived names: %v", exp.Derived)
	}
}
