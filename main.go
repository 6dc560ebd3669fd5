/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package main

import "filialstore/cmd"

func main() {
	cmd.Execute()
}
