package main

import "github.com/theirongolddev/kcal/cmd"

func main() {
	cmd.Execute()
}
