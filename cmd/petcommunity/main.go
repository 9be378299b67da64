package main

import "github.com/nfrund/petcommunity/cmd/petcommunity/cmd"

func main() {
	cmd.Execute()
}
