package main

import "showcase/api/internal/cli"

func main() {
	cli.Execute()
}
