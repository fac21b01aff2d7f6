package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jengzang/vacances-backend-go/internal/auth"
)

// IssueToken handles the issue-token subcommand
func IssueToken(args []string, secret string) {
	if err := issueToken(args, secret, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func issueToken(args []string, secret string, out, errOut io.Writer) error {
	fs := flag.NewFlagSet("issue-token", flag.ContinueOnError)
	fs.SetOutput(errOut)
	subject := fs.String("subject", "admin", "Token subject")
	ttl := fs.Duration("ttl", 24*time.Hour, "Token lifetime")
	fs.Usage = func() {
		fmt.Fprintf(errOut, "Usage: server issue-token [OPTIONS]\n\n")
		fmt.Fprintf(errOut, "Prints an admin bearer token for the /api/v1/admin routes.\n\n")
		fmt.Fprintf(errOut, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(errOut, "\nEnvironment Variables:\n")
		fmt.Fprintf(errOut, "  JWT_SECRET   Signing secret, must match the server's\n")
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *ttl <= 0 {
		return fmt.Errorf("ttl must be positive, got %v", *ttl)
	}

	token, err := auth.Issue(secret, *subject, *ttl, time.Now())
	if err != nil {
		return err
	}
	fmt.Fprintln(out, token)
	return nil
}
