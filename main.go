package main

import "github.com/frahmantamala/shift-roster/cmd"

func main() {
	cmd.Execute()
}
