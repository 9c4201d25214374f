// canvasmith - turn model responses into placeable canvas artifacts
package main

import (
	"os"

	"github.com/canvasmith/canvasmith/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
