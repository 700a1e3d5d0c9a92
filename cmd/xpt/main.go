package main

import "github.com/glied2m/xp-tracker/cmd/xpt/root"

func main() {
	root.Execute()
}
