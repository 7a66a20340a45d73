package main

import "github.com/notargets/gov4s/cmd"

func main() {
	cmd.Execute()
}
