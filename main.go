package main

import "github.com/kamal-hamza/ams-cli/cmd"

func main() {
	cmd.Execute()
}
