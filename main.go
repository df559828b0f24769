package main

import "github.com/k1LoW/git-reattach/cmd"

func main() {
	cmd.Execute()
}
