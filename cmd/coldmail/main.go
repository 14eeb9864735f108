package main

import "coldmail-backend/internal/cli"

func main() {
	cli.Execute()
}
