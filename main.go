package main

import "github.com/trimsy-app/trimsy_backend/cmd"

func main() {
	cmd.Execute()
}
