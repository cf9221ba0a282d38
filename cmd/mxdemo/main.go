// SPDX-License-Identifier: MIT

// Command mxdemo exercises the matrix library: it prints a sample matrix and
// runs a configurable batch of element-wise and product jobs concurrently.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
