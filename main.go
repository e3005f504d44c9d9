package main

import "github.com/peterchambers21/portfolio/cmd"

func main() {
	cmd.Execute()
}
