// Command ordercheck validates an order document and prints its report.
//
//	ordercheck report --file orders.json --top 2 --gmv --format json
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
