package main

import "github.com/alexiusacademia/steelform/cmd"

func main() {
	cmd.Execute()
}
