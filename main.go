package main

import "github.com/kasuboski/streamportal/cmd"

func main() {
	cmd.Execute()
}
