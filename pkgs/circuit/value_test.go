package circuit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseBusValue(t *testing.T) {
	got, err := ParseBusValue("1010")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := BusValue{true, false, true, false}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseBusValueInvalid(t *testing.T) {
	if _, err := ParseBusValue("102"); err == nil {
		t.Fatalf("expected an error for a non-binary digit")
	}
}

func TestBusValueString(t *testing.T) {
	v := BusValue{true, true, false}
	if got, want := v.String(), "110"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBusValueNot(t *testing.T) {
	v := BusValue{true, false}
	got := v.Not()
	want := BusValue{false, true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if v[0] != true {
		t.Errorf("Not() must not mutate the receiver")
	}
}

func TestBusValueAndOrXor(t *testing.T) {
	a := BusValue{true, true, false, false}
	b := BusValue{true, false, true, false}

	if diff := cmp.Diff(BusValue{true, false, false, false}, a.And(b)); diff != "" {
		t.Errorf("And mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(BusValue{true, true, true, false}, a.Or(b)); diff != "" {
		t.Errorf("Or mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(BusValue{false, true, true, false}, a.Xor(b)); diff != "" {
		t.Errorf("Xor mismatch (-want +got):\n%s", diff)
	}
}

func TestBusValueWidthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic on width mismatch")
		}
	}()
	BusValue{true}.And(BusValue{true, false})
}

func TestBusValueCloneIndependence(t *testing.T) {
	v := BusValue{true, false}
	clone := v.Clone()
	clone[0] = false
	if v[0] != true {
		t.Errorf("mutating a clone must not affect the original")
	}
}

func TestBusValueEqual(t *testing.T) {
	a := BusValue{true, false}
	b := BusValue{true, false}
	c := BusValue{false, true}
	if !a.Equal(b) {
		t.Errorf("expected a.Equal(b)")
	}
	if a.Equal(c) {
		t.Errorf("did not expect a.Equal(c)")
	}
	if a.Equal(BusValue{true, false, true}) {
		t.Errorf("values of different width must not be equal")
	}
}

func TestBusValueSliceAndConcat(t *testing.T) {
	v := BusValue{true, false, true, false}
	if diff := cmp.Diff(BusValue{false, true}, v.Slice(1, 3)); diff != "" {
		t.Errorf("Slice mismatch (-want +got):\n%s", diff)
	}

	a := BusValue{true, false}
	b := BusValue{false, true}
	if diff := cmp.Diff(BusValue{true, false, false, true}, a.Concat(b)); diff != "" {
		t.Errorf("Concat mismatch (-want +got):\n%s", diff)
	}
}
