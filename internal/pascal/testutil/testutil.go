// Package testutil provides shared test helpers for the pascal package tests.
package testutil

import (
	"strings"
	"testing"
)

// ContainsSubstring checks if haystack contains needle (case-insensitive).
func ContainsSubstring(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// AssertNoError fails the test if err is non-nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

// RequireNoError is like AssertNoError but calls t.Fatal.
func RequireNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
}

// AssertErrorContains fails unless err is non-nil and mentions the expected
// substring.
func AssertErrorContains(t *testing.T, err error, expected string) {
	t.Helper()
	if err == nil {
		t.Errorf("Expected error containing %q, got nil", expected)
		return
	}
	if !ContainsSubstring(err.Error(), expected) {
		t.Errorf("Expected error containing %q, got: %v", expected, err)
	}
}
