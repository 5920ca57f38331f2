package main

import "songstats/cmd"

func main() {
	cmd.Execute()
}
