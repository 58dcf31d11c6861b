package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClaims struct {
	id uuid.UUID
}

func (c *stubClaims) GetSessionID() uuid.UUID { return c.id }

type stubValidator struct {
	id  uuid.UUID
	err error
}

func (v *stubValidator) ValidateToken(tokenString string) (SessionIDGetter, error) {
	if v.err != nil {
		return nil, v.err
	}
	return &stubClaims{id: v.id}, nil
}

func TestSessionAuth_BearerToken(t *testing.T) {
	wantID := uuid.New()
	var gotID uuid.UUID

	handler := SessionAuth(&stubValidator{id: wantID})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := GetSessionID(r)
		require.NoError(t, err)
		gotID = id
	}))

	req := httptest.NewRequest("GET", "/sessions/me", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, wantID, gotID)
}

func TestSessionAuth_Cookie(t *testing.T) {
	wantID := uuid.New()

	called := false
	handler := SessionAuth(&stubValidator{id: wantID})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest("GET", "/sessions/me", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "some-token"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestSessionAuth_MissingToken(t *testing.T) {
	handler := SessionAuth(&stubValidator{id: uuid.New()})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	}))

	req := httptest.NewRequest("GET", "/sessions/me", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionAuth_InvalidToken(t *testing.T) {
	handler := SessionAuth(&stubValidator{err: errors.New("bad token")})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	}))

	req := httptest.NewRequest("GET", "/sessions/me", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionAuth_MalformedAuthorizationHeader(t *testing.T) {
	handler := SessionAuth(&stubValidator{id: uuid.New()})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	}))

	req := httptest.NewRequest("GET", "/sessions/me", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetSessionID_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest("GET", "/sessions/me", nil)
	_, err := GetSessionID(req)
	assert.Error(t, err)
}
