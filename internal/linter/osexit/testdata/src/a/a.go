package main

import (
	"fmt"
	"os"
	myos "os"
)

func main() {
	fmt.Println("starting")
	os.Exit(1)   // want "direct call to os.Exit in main function"
	myos.Exit(2) // want "direct call to os.Exit in main function"

	defer func() {
		os.Exit(3)
	}()
}

func helper() {
	os.Exit(4)
}
