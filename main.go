package main

import "github.com/Yashvi2874/digiform/cmd"

func main() {
	cmd.Execute()
}
