package main

import "github.com/advise-tools/advise/cmd"

func main() {
	cmd.Execute()
}
