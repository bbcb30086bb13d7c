package main

import "sweldo/internal/app/server"

func main() {
	server.Run()
}
