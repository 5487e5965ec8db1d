// List the records in CPW track logs
package main

import (
	cpw2gpx "github.com/doismellburning/cpw2gpx/src"
)

func main() {
	cpw2gpx.CpwDumpMain()
}
