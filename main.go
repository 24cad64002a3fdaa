package main

import "wistia-clean/cmd"

func main() {
	cmd.Execute()
}
