package main

import "minifykit/cmd"

func main() {
	cmd.Execute()
}
