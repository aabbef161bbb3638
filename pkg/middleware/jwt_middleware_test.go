package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"annapurna/internal/models/db_models"
	"annapurna/internal/repositories"
	"annapurna/pkg/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.SetSigningKey([]byte("middleware-test-secret"))
	os.Exit(m.Run())
}

func newGateFixture(t *testing.T) (*gin.Engine, *repositories.InMemoryUserRepository) {
	t.Helper()

	users := repositories.NewInMemoryUserRepository()
	r := gin.New()
	r.GET("/user-only", JWTAuthMiddleware(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextUserIDKey))
	})
	r.GET("/admin-only", AdminAuthMiddleware(users), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r, users
}

func doGet(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func mustInsert(t *testing.T, users *repositories.InMemoryUserRepository, u *db_models.User) *db_models.User {
	t.Helper()
	if err := users.Insert(context.Background(), u); err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	return u
}

func mustToken(t *testing.T, userID string) string {
	t.Helper()
	tok, err := utils.CreateToken(userID)
	if err != nil {
		t.Fatalf("CreateToken error: %v", err)
	}
	return tok
}

func TestJWTAuthMiddleware(t *testing.T) {
	r, users := newGateFixture(t)
	u := mustInsert(t, users, &db_models.User{Email: "u@example.com"})

	if w := doGet(r, "/user-only", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("no token: got %d, want 401", w.Code)
	}
	if w := doGet(r, "/user-only", "garbage"); w.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: got %d, want 401", w.Code)
	}

	w := doGet(r, "/user-only", mustToken(t, u.ID))
	if w.Code != http.StatusOK {
		t.Fatalf("valid token: got %d, want 200", w.Code)
	}
	if w.Body.String() != u.ID {
		t.Fatalf("handler saw user id %q, want %q", w.Body.String(), u.ID)
	}
}

func TestAdminAuthMiddleware(t *testing.T) {
	r, users := newGateFixture(t)

	// First insert is promoted to admin by the fallback store; the
	// second account is a regular user.
	admin := mustInsert(t, users, &db_models.User{Email: "admin@example.com"})
	regular := mustInsert(t, users, &db_models.User{Email: "user@example.com"})

	if w := doGet(r, "/admin-only", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("no token: got %d, want 401", w.Code)
	}
	if w := doGet(r, "/admin-only", mustToken(t, regular.ID)); w.Code != http.StatusForbidden {
		t.Fatalf("non-admin: got %d, want 403", w.Code)
	}
	if w := doGet(r, "/admin-only", mustToken(t, "ghost-id")); w.Code != http.StatusForbidden {
		t.Fatalf("unknown account: got %d, want 403", w.Code)
	}
	if w := doGet(r, "/admin-only", mustToken(t, admin.ID)); w.Code != http.StatusOK {
		t.Fatalf("admin: got %d, want 200", w.Code)
	}
}

// Privilege changes bite on the very next request, because the flag is
// re-read from the store instead of being trusted from the token.
func TestAdminAuthMiddleware_RevocationImmediate(t *testing.T) {
	r, users := newGateFixture(t)

	admin := mustInsert(t, users, &db_models.User{Email: "boss@example.com"})
	tok := mustToken(t, admin.ID)

	if w := doGet(r, "/admin-only", tok); w.Code != http.StatusOK {
		t.Fatalf("before revocation: got %d, want 200", w.Code)
	}

	admin.IsAdmin = false
	if err := users.Update(context.Background(), admin); err != nil {
		t.Fatalf("Update error: %v", err)
	}

	if w := doGet(r, "/admin-only", tok); w.Code != http.StatusForbidden {
		t.Fatalf("after revocation: got %d, want 403", w.Code)
	}
}
