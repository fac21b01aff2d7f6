package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jengzang/vacances-backend-go/internal/auth"
)

func TestIssueTokenPrintsVerifiableToken(t *testing.T) {
	var out, errOut bytes.Buffer
	if err := issueToken([]string{"-subject", "cron", "-ttl", "1h"}, "s3cret", &out, &errOut); err != nil {
		t.Fatalf("issueToken: %v", err)
	}

	claims, err := auth.Verify("s3cret", strings.TrimSpace(out.String()))
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Subject != "cron" {
		t.Fatalf("subject = %q", claims.Subject)
	}
}

func TestIssueTokenErrors(t *testing.T) {
	var out, errOut bytes.Buffer
	if err := issueToken([]string{"-ttl", "-1h"}, "s3cret", &out, &errOut); err == nil {
		t.Fatal("negative ttl accepted")
	}
	if err := issueToken(nil, "", &out, &errOut); err == nil {
		t.Fatal("empty secret accepted")
	}
	if err := issueToken([]string{"-bogus"}, "s3cret", &out, &errOut); err == nil {
		t.Fatal("unknown flag accepted")
	}
	if out.Len() != 0 {
		t.Fatalf("token printed on error: %q", out.String())
	}
}
