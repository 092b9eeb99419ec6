package main

import (
	"github.com/Lu-Luou/TrabajoTarjeta2025/cmd/farecard/command"
)

func main() {
	command.Execute()
}
