package service

import (
	"errors"
	"testing"

	"github.com/minhanle/skillcheck/internal/apperr"
	"github.com/minhanle/skillcheck/internal/model"
)

func TestAccessGate(t *testing.T) {
	gate := NewAccessGate(NewPlainEqualityPolicy())

	open := &model.Assessment{ID: "a1"}
	gated := &model.Assessment{ID: "a2", Secret: "abc123"}

	cases := []struct {
		name       string
		assessment *model.Assessment
		supplied   string
		granted    bool
		hadSecret  bool
	}{
		{name: "no secret, no credential", assessment: open, supplied: "", granted: true},
		{name: "no secret, stray credential", assessment: open, supplied: "anything", granted: true},
		{name: "secret, missing credential", assessment: gated, supplied: "", granted: false, hadSecret: false},
		{name: "secret, wrong credential", assessment: gated, supplied: "wrong", granted: false, hadSecret: true},
		{name: "secret, correct credential", assessment: gated, supplied: "abc123", granted: true},
	}

	for _, tc := range cases {
		err := gate.Authorize(tc.assessment, tc.supplied)
		if tc.granted {
			if err != nil {
				t.Fatalf("%s: expected access, got %v", tc.name, err)
			}
			continue
		}
		var authErr *apperr.AuthRequired
		if !errors.As(err, &authErr) {
			t.Fatalf("%s: expected AuthRequired, got %v", tc.name, err)
		}
		if authErr.CredentialSupplied != tc.hadSecret {
			t.Fatalf("%s: CredentialSupplied = %v, want %v", tc.name, authErr.CredentialSupplied, tc.hadSecret)
		}
	}
}
