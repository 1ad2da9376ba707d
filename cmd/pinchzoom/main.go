package main

import "github.com/phanxgames/pinchzoom/cmd/pinchzoom/cmd"

func main() {
	cmd.Execute()
}
