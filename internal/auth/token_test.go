package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndVerify(t *testing.T) {
	tok, err := Issue("s3cret", "ops", time.Hour, time.Now())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	claims, err := Verify("s3cret", tok)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Subject != "ops" || claims.Role != AdminRole {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestVerifyRejects(t *testing.T) {
	good, _ := Issue("s3cret", "ops", time.Hour, time.Now())
	expired, _ := Issue("s3cret", "ops", time.Minute, time.Now().Add(-time.Hour))

	noRole, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte("s3cret"))

	noExp, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{Role: AdminRole}).SignedString([]byte("s3cret"))

	cases := []struct {
		name   string
		secret string
		token  string
	}{
		{"wrong secret", "other", good},
		{"expired", "s3cret", expired},
		{"garbage", "s3cret", "not.a.jwt"},
		{"missing role", "s3cret", noRole},
		{"missing expiry", "s3cret", noExp},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Verify(tc.secret, tc.token); err == nil {
				t.Fatal("Verify accepted the token")
			}
		})
	}

	if _, err := Verify("s3cret", noRole); !errors.Is(err, ErrForbidden) {
		t.Fatalf("missing role err = %v, want ErrForbidden", err)
	}
}

func TestEmptySecret(t *testing.T) {
	if _, err := Issue("", "ops", time.Hour, time.Now()); !errors.Is(err, ErrMissingSecret) {
		t.Fatalf("Issue err = %v", err)
	}
	if _, err := Verify("", "x"); !errors.Is(err, ErrMissingSecret) {
		t.Fatalf("Verify err = %v", err)
	}
}
