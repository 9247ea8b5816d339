package main

import "grocery-tracker/cmd"

func main() {
	cmd.Execute()
}
