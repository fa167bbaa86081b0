package main

import "github.com/alexiusacademia/gobarrel/cmd"

func main() {
	cmd.Execute()
}
