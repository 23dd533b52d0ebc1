// Example program demonstrating the gitcontrib library API.
//
// Run from a directory holding a config.yaml (gitcontrib init writes
// one):
//
//	go run ./example/
//
// With environment overrides:
//
//	GIT_AUTHOR="Jane Doe" DATABASE_URL=postgres://db/contrib go run ./example/
package main

import (
	"fmt"
	"log"
	"sort"

	"github.com/gitcontrib/go-gitcontrib/pkg/gitcontrib"
)

func main() {
	cfg, err := gitcontrib.Load(gitcontrib.Options{
		Path: ".",
	})
	if err != nil {
		log.Fatalf("loading configuration failed: %v", err)
	}

	printConfig(cfg)

	fmt.Printf("%-40s %s\n", "derived: scraper timeout", cfg.Scraper.Timeout())
	fmt.Printf("%-40s %s\n", "derived: retry backoff", cfg.Scraper.RetryBackoff())
	fmt.Printf("%-40s %s\n", "derived: database driver", cfg.Database.Driver())
}

func printConfig(cfg gitcontrib.Config) {
	fmt.Println("=== Resolved Configuration ===")

	values := cfg.Flatten()
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Printf("%-40s %s\n", k, values[k])
	}
	fmt.Println()
}
