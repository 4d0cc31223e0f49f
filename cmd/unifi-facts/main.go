package main

import (
	"github.com/kenmoini/unifi-facts/internal/cli"
)

func main() {
	cli.Execute()
}
