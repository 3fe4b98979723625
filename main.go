/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/bank-system/teller/cmd"

func main() {
	cmd.Execute()
}
