package main

import "threadhub_backend/internal/app"

func main() {
	app.Run()
}
