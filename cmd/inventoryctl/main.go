package main

import "github.com/jhoicas/inventory-service/cmd/inventoryctl/commands"

func main() {
	commands.Execute()
}
