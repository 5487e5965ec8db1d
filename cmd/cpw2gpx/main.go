// Convert a CPW track log to GPX
package main

import (
	cpw2gpx "github.com/doismellburning/cpw2gpx/src"
)

func main() {
	cpw2gpx.Cpw2GpxMain()
}
