package main

import "testing"

func TestRunValidationOK(t *testing.T) {
	if err := runValidation(); err != nil {
		t.Fatalf("runValidation: %v", err)
	}
}
