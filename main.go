package main

import "github.com/llehouerou/shelf/internal/cli"

func main() {
	cli.Execute()
}
