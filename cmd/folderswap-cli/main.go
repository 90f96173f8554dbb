package main

import "folderswap/cmd/folderswap-cli/cmd"

func main() {
	cmd.Execute()
}
