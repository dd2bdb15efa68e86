// Command layerarith computes the intersection and pure-diffusion layers
// of a CIF file's polysilicon and diffusion polygons by plane sweep.
package main

import (
	"os"

	"github.com/vlsi-tools/layerarith/cmd/layerarith/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
