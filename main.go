package main

import "github.com/thyeshengleng/collection-form/cmd"

func main() {
	cmd.Execute()
}
