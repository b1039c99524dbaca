/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/ssargent/ebtree/cmd/ebtreectl/cmd"
)

func main() {
	cmd.Execute()
}
