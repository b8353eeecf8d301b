package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"trustify_claims/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func TestTokenVerifier_Verify(t *testing.T) {
	t.Run("valid signed token", func(t *testing.T) {
		v := &TokenVerifier{secret: []byte("test-secret")}
		token := signedToken(t, "test-secret", jwt.MapClaims{
			"sub":                "user-1",
			"email":              "user@example.com",
			"preferred_username": "user1",
			"roles":              []any{"user", "admin"},
		})

		id, err := v.Verify(token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id.SubjectID != "user-1" || id.Email != "user@example.com" || id.Username != "user1" {
			t.Fatalf("unexpected identity: %+v", id)
		}
		if !id.IsAdmin() {
			t.Fatalf("expected admin role")
		}
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		v := &TokenVerifier{secret: []byte("test-secret")}
		token := signedToken(t, "other-secret", jwt.MapClaims{"sub": "user-1"})

		if _, err := v.Verify(token); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("missing sub rejected", func(t *testing.T) {
		v := &TokenVerifier{secret: []byte("test-secret")}
		token := signedToken(t, "test-secret", jwt.MapClaims{"email": "user@example.com"})

		if _, err := v.Verify(token); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("realm_access roles", func(t *testing.T) {
		v := &TokenVerifier{}
		token := signedToken(t, "any", jwt.MapClaims{
			"sub":          "user-1",
			"realm_access": map[string]any{"roles": []any{"admin"}},
		})

		id, err := v.Verify(token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !id.IsAdmin() {
			t.Fatalf("expected admin role from realm_access")
		}
	})
}

func TestAuthenticate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(v *TokenVerifier) *gin.Engine {
		r := gin.New()
		r.Use(Authenticate(v))
		r.GET("/whoami", func(c *gin.Context) {
			id, _ := IdentityFromContext(c)
			c.JSON(http.StatusOK, gin.H{"sub": id.SubjectID})
		})
		return r
	}

	t.Run("missing token", func(t *testing.T) {
		r := newRouter(&TokenVerifier{})

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("bearer token accepted", func(t *testing.T) {
		v := &TokenVerifier{secret: []byte("test-secret")}
		r := newRouter(v)

		token := signedToken(t, "test-secret", jwt.MapClaims{"sub": "user-1"})
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("token query parameter accepted", func(t *testing.T) {
		v := &TokenVerifier{secret: []byte("test-secret")}
		r := newRouter(v)

		token := signedToken(t, "test-secret", jwt.MapClaims{"sub": "user-1"})
		req := httptest.NewRequest(http.MethodGet, "/whoami?token="+token, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("gateway headers honored when trusted", func(t *testing.T) {
		t.Setenv("TRUST_GATEWAY_HEADERS", "true")
		r := newRouter(&TokenVerifier{})

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("X-User-Id", "user-1")
		req.Header.Set("X-User-Roles", "user, admin")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("gateway headers ignored by default", func(t *testing.T) {
		r := newRouter(&TokenVerifier{})

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("X-User-Id", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(id entities.Identity) *gin.Engine {
		r := gin.New()
		r.Use(func(c *gin.Context) {
			SetIdentity(c, id)
			c.Next()
		})
		r.Use(RequireAdmin())
		r.GET("/admin", func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}

	t.Run("admin passes", func(t *testing.T) {
		r := newRouter(entities.Identity{SubjectID: "a", Roles: []string{entities.RoleAdmin}})
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("non-admin blocked", func(t *testing.T) {
		r := newRouter(entities.Identity{SubjectID: "u", Roles: []string{entities.RoleUser}})
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}
