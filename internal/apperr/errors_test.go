package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/newsninja/newsninja/internal/apperr"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("no trends provided")

	if err.Error() != "no trends provided" {
		t.Errorf("expected 'no trends provided', got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Errorf("expected nil unwrap, got %v", err.Unwrap())
	}
}

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("parse failed")
	err := apperr.NewValidationWrap("invalid limit", inner)

	if err.Error() != "invalid limit: parse failed" {
		t.Errorf("expected 'invalid limit: parse failed', got %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestValidationError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewValidation("empty country code")

	wrapped := fmt.Errorf("handler: %w", original)
	doubleWrapped := fmt.Errorf("router: %w", wrapped)

	var ve *apperr.ValidationError
	if !errors.As(doubleWrapped, &ve) {
		t.Fatal("errors.As should find ValidationError through double wrapping")
	}
	if ve.Message != "empty country code" {
		t.Errorf("expected 'empty country code', got %q", ve.Message)
	}
}

func TestNotFoundError(t *testing.T) {
	err := apperr.NewNotFound("article")
	if err.Error() != "article not found" {
		t.Errorf("unexpected message %q", err.Error())
	}

	wrapped := fmt.Errorf("storage: %w", err)
	var nf *apperr.NotFoundError
	if !errors.As(wrapped, &nf) {
		t.Fatal("errors.As should find NotFoundError through wrapping")
	}
}
