// Package main provides the chisei CLI.
package main

import (
	"fmt"
	"os"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("chisei %s\n", version)
		return
	}

	fmt.Println("chisei - feedforward neural networks for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("")
	fmt.Println("Runnable examples live under examples/ (xnor, mnist).")
}
