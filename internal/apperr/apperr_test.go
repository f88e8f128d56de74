package apperr

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Validation("cost must be greater than 0"), http.StatusBadRequest},
		{"duplicate", DuplicateAccount("account already exists"), http.StatusBadRequest},
		{"credentials", InvalidCredentials(), http.StatusUnauthorized},
		{"unauthorized", Unauthorized(nil), http.StatusUnauthorized},
		{"not found", NotFound("subscription"), http.StatusNotFound},
		{"internal", Internal(errors.New("boom")), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("update: %w", NotFound("subscription")), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestPublicMessageHidesCause(t *testing.T) {
	err := Internal(errors.New("pq: connection refused"))

	assert.Equal(t, "internal server error", PublicMessage(err))
	assert.Equal(t, "internal server error", PublicMessage(errors.New("raw")))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestRespond(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/subscriptions/1", nil)

	Respond(c, log, NotFound("subscription"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"subscription not found"}`, rec.Body.String())
	assert.True(t, c.IsAborted())
}
