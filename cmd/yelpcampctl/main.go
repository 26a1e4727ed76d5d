package main

import "github.com/dalemusser/yelpcamp/internal/app/cli"

func main() {
	cli.Execute()
}
