// stagehttpd - quittable static file server for browser-driven tests
package main

import (
	"fmt"
	"os"

	"github.com/getmockd/stagehttpd/pkg/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
