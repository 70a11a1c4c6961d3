package main

import "heartbeat/cmd"

func main() {
	cmd.Execute()
}
