package main

import "github.com/inovacc/gradients/cmd"

func main() {
	cmd.Execute()
}
