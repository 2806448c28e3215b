package main

import "github.com/sci2zero/TeslaRIS-backend-sub000/cmd"

func main() {
	cmd.Execute()
}
