package main

import "jsmin/cmd"

func main() {
	cmd.Execute()
}
