package main

import (
	"github.com/bijilboby/TQuery/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
