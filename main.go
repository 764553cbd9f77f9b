package main

import (
	"fmt"
	"os"

	"github.com/adtyap26/kafka-broker-view/cmd"
)

var (
	version = "0.1.0"
)

func main() {
	if err := cmd.Execute(version); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
