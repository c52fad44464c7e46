package main

import "github.com/iburimskiy/spiral-animation/internal/cli"

func main() {
	cli.Execute()
}
