// Command issue-token prints a signed bearer token for local testing.
package main

import (
	"flag"
	"fmt"
	"os"
	"spotBooker/internal/config"
	"spotBooker/internal/lib/jwt"
)

func main() {
	userID := flag.Int("user", 0, "id of the user the token is issued for")
	flag.Parse()

	if *userID <= 0 {
		fmt.Fprintln(os.Stderr, "-user must be a positive user id")
		os.Exit(2)
	}

	cfg := config.MustLoad()

	token, err := jwt.NewToken(*userID, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to issue token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
