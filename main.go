package main

import "github.com/kamusis/painmatch/cmd"

func main() {
	cmd.Execute()
}
