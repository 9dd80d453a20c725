package main

import (
	cmd "github.com/shopmate/shopmate/cmd/shopmate"
)

func main() {
	cmd.Execute()
}
