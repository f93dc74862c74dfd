package main

import "thirdcoast.systems/studio/cmd/studioctl/internal/cli"

func main() {
	cli.Execute()
}
