package main

import (
	"github.com/minhng-ct/commerce-bot/cmd"
)

func main() {
	cmd.Execute()
}
