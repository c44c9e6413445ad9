package main

import "github.com/fakeyudi/culling-graph/cmd"

func main() {
	cmd.Execute()
}
