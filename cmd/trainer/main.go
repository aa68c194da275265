package main

import (
	"fmt"
	"os"
)

// @title Barista Drill API
// @version 1.0
// @description Adaptive drink recipe self-quiz trainer

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1
func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
