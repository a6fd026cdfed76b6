// @title Dog Registry API
// @version 1.0
// @description Registro de perros con fragmentos HTML para htmx.
// @BasePath /
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
