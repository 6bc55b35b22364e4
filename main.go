package main

import "pressroom/cmd"

func main() {
	cmd.Execute()
}
