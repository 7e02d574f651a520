package main

import "github.com/evanrichards/tree-styler-cs/internal/app"

func main() {
	app.Run()
}
