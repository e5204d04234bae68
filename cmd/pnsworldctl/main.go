package main

import "github.com/OpenTraceLab/pcbworld/cmd/pnsworldctl/cmd"

func main() {
	cmd.Execute()
}
