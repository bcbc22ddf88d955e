package main

import "github.com/jsphweid/keywheel/cmd"

func main() {
	cmd.Execute()
}
