package main

import "github.com/user/gastos/internal/cli"

func main() {
	cli.Execute()
}
