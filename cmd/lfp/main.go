// Command lfp computes longest flow paths over a D8 flow-direction raster
// using one of seven algorithm variants, selected by index.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
