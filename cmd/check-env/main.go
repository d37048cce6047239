package main

import (
	"fmt"
	"os"

	"github.com/govjobs/govjobs-backend/internal/config"
)

func main() {
	cfg := config.Load()

	fmt.Println("=== Environment Check ===")
	missing := 0
	for _, c := range config.Checks() {
		switch {
		case !c.Set:
			missing++
			fmt.Printf("  %-14s MISSING\n", c.Key)
		case c.Secret:
			fmt.Printf("  %-14s set (%s)\n", c.Key, mask(c.Value))
		default:
			fmt.Printf("  %-14s %s\n", c.Key, c.Value)
		}
	}

	fmt.Printf("  %-14s %v\n", "SMTP", cfg.SMTP.Enabled())
	if cfg.UsingDefaultSecret() {
		fmt.Println("Warning: using the development JWT secret")
	}

	if missing > 0 {
		fmt.Printf("%d required setting(s) missing\n", missing)
		os.Exit(1)
	}
	fmt.Println("All required settings present")
}

// mask keeps the first two characters of a secret.
func mask(s string) string {
	if len(s) <= 2 {
		return "**"
	}
	return s[:2] + "****"
}
