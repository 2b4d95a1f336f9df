package main

import "cachectl/app"

func main() {
	app.Execute()
}
