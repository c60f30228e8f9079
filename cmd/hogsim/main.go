// Command hogsim simulates the dice game Hog and evaluates scoring
// strategies against one another.
package main

import "github.com/hogsim/hog/internal/cli"

func main() {
	cli.Execute()
}
