package main

import (
	"github.com/mchmarny/propensity/pkg/cli"
)

func main() {
	cli.Execute()
}
