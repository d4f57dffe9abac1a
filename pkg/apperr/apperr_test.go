package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"papelaria/pkg/apperr"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{apperr.MissingField("userId"), http.StatusBadRequest},
		{apperr.NotFound("User", 7), http.StatusNotFound},
		{apperr.ErrDuplicateEmail, http.StatusConflict},
		{apperr.Validation(map[string]string{"email": "bad"}), http.StatusInternalServerError},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if got := apperr.HTTPStatus(tc.err); got != tc.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestWrappedErrorsStillMap(t *testing.T) {
	err := fmt.Errorf("create user: %w", apperr.ErrDuplicateEmail)
	if got := apperr.HTTPStatus(err); got != http.StatusConflict {
		t.Errorf("wrapped duplicate = %d, want 409", got)
	}

	err = fmt.Errorf("lookup: %w", apperr.NotFound("Item", 3))
	if got := apperr.HTTPStatus(err); got != http.StatusNotFound {
		t.Errorf("wrapped not-found = %d, want 404", got)
	}
}

func TestErrorMessages(t *testing.T) {
	if msg := apperr.MissingField("name").Error(); msg != "The name field is required." {
		t.Errorf("unexpected missing-field message: %q", msg)
	}
	if msg := apperr.NotFound("User", 42).Error(); msg != "User 42 not found" {
		t.Errorf("unexpected not-found message: %q", msg)
	}
}
