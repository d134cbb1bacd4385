package calculator

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-chi-calculator/pkg/arith"
)

func TestClassify(t *testing.T) {
	_, rangeErr := arith.Add(1000001, 0)
	_, unknownErr := arith.ParseOperation("modulo")

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
	}{
		{name: "range", err: rangeErr, wantStatus: http.StatusUnprocessableEntity, wantKind: KindOutOfRange},
		{name: "wrapped range", err: fmt.Errorf("evaluate: %w", rangeErr), wantStatus: http.StatusUnprocessableEntity, wantKind: KindOutOfRange},
		{name: "division by zero", err: arith.ErrDivisionByZero, wantStatus: http.StatusUnprocessableEntity, wantKind: KindDivisionByZero},
		{name: "overflow", err: fmt.Errorf("divide: %w", ErrResultOverflow), wantStatus: http.StatusUnprocessableEntity, wantKind: KindOverflow},
		{name: "unknown operation", err: unknownErr, wantStatus: http.StatusNotFound, wantKind: KindUnknownOperation},
		{name: "other", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantKind: KindInternal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, kind := Classify(tc.err)
			if status != tc.wantStatus || kind != tc.wantKind {
				t.Fatalf("expected (%d, %q), got (%d, %q)", tc.wantStatus, tc.wantKind, status, kind)
			}
		})
	}
}
