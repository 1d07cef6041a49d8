package comb

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type verb string

const (
	verbGet    verb = "GET"
	verbPut    verb = "PUT"
	verbDelete verb = "DELETE"
)

func (v verb) RawValue() string { return string(v) }

func TestRawToken(t *testing.T) {
	if v, rest, err := RawToken(verbGet).ParseString("GET /x"); err != nil || v != verbGet || rest != " /x" {
		t.Errorf("got %v, %q, %v", v, rest, err)
	}
	_, rest, err := RawToken(verbGet).ParseString("POST /x")
	if rest != "POST /x" {
		t.Error("failed raw token moved the cursor")
	}
	want := ExpectedTokenError{Expected: OneToken("GET")}
	if diff := cmp.Diff(want, err, cmpTokens); diff != "" {
		t.Errorf("error mismatch (-want +got):\n%v", diff)
	}
}

func TestEnumeration(t *testing.T) {
	p := Enumeration(verbGet, verbPut, verbDelete)

	for _, tc := range []struct {
		in   string
		want verb
	}{
		{"GET", verbGet},
		{"PUT /y", verbPut},
		{"DELETE", verbDelete},
	} {
		v, _, err := p.ParseString(tc.in)
		if err != nil || v != tc.want {
			t.Errorf("%q: got %v, %v", tc.in, v, err)
		}
	}
}

func TestEnumerationCollapse(t *testing.T) {
	p := Enumeration(verbGet, verbPut, verbDelete)

	// total failure is one flat OneOf error, never a nested
	// either-chain
	_, rest, err := p.ParseString("PATCH")
	want := ExpectedTokenError{Expected: OneOfTokens("GET", "PUT", "DELETE")}
	if diff := cmp.Diff(want, err, cmpTokens); diff != "" {
		t.Errorf("error mismatch (-want +got):\n%v", diff)
	}
	if rest != "PATCH" {
		t.Error("failed enumeration moved the cursor")
	}
}

// point is a self-describing type: "3,4" parses to point{3, 4}.
type point struct {
	X, Y int
}

func (point) ComposedParser() Parser[point] {
	return Bind(ThenSkip(Number(), Token(",")), func(x int) Parser[point] {
		return Map(Number(), func(y int) (point, error) {
			return point{X: x, Y: y}, nil
		})
	})
}

func TestParseValue(t *testing.T) {
	got, err := ParseValue[point]("3,4")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if diff := cmp.Diff(point{X: 3, Y: 4}, got); diff != "" {
		t.Errorf("value (-want +got):\n%v", diff)
	}

	// ParseValue demands complete consumption
	_, err = ParseValue[point]("3,4!")
	if diff := cmp.Diff(IncompleteError{Remaining: "!"}, err); diff != "" {
		t.Errorf("error mismatch (-want +got):\n%v", diff)
	}
}
