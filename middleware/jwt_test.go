package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"homenest/utils"
)

func runJWT(t *testing.T, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := JWT("test-secret")(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	return rec, c
}

func TestJWTMissingHeader(t *testing.T) {
	rec, _ := runJWT(t, "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestJWTMalformedHeader(t *testing.T) {
	rec, _ := runJWT(t, "Token abc")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestJWTInvalidToken(t *testing.T) {
	rec, _ := runJWT(t, "Bearer not.a.token")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestJWTValidTokenSetsIdentity(t *testing.T) {
	userID := primitive.NewObjectID()
	token, err := utils.GenerateJWT("test-secret", time.Hour, userID, "a@b.com", "admin")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	rec, c := runJWT(t, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := c.Get("user_id").(primitive.ObjectID); got != userID {
		t.Errorf("user_id = %v, want %v", got, userID)
	}
	if got := c.Get("user_email").(string); got != "a@b.com" {
		t.Errorf("user_email = %q", got)
	}
	if got := c.Get("user_role").(string); got != "admin" {
		t.Errorf("user_role = %q", got)
	}
}
