package main

import "github.com/amirkhaki/ptrdemo/cmd/ptrdemo/cmd"

func main() {
	cmd.Execute()
}
