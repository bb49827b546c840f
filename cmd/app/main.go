package main

import (
	"github.com/humanbelnik/stopbus/core/internal/app"
	"github.com/humanbelnik/stopbus/core/internal/config"
)

func main() {
	app.Go(config.Load())
}
