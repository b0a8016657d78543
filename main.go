package main

import (
	"github/multichain/go-walletcore/cmd"
)

func main() {
	cmd.Execute()
}
