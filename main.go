/*
Copyright © 2022 Nicholas McKinney
*/
package main

import "binobj/cmd"

func main() {
	cmd.Execute()
}
