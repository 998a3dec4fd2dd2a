// Command chitragupt runs the ingredient inventory service and offers
// offline views of a catalog.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
