package credentials

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pq.Error{Code: "23505", Constraint: "users_email_unique"}

	if !isUniqueViolation(unique) {
		t.Fatal("expected unique violation to be detected")
	}
	if !isUniqueViolation(fmt.Errorf("exec insert: %w", unique)) {
		t.Fatal("expected wrapped unique violation to be detected")
	}
	if isUniqueViolation(&pq.Error{Code: "23503"}) {
		t.Fatal("foreign key violation misread as unique violation")
	}
	if isUniqueViolation(errors.New("connection refused")) {
		t.Fatal("plain error misread as unique violation")
	}
	if isUniqueViolation(nil) {
		t.Fatal("nil misread as unique violation")
	}
}
