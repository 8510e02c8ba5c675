package main

import "github/chapool/nft-mint/cmd"

func main() {
	cmd.Execute()
}
