package main

import "github.com/synthkit/wlnc/pkg/cmd"

func main() {
	cmd.Execute()
}
