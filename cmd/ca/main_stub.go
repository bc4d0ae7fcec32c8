//go:build !ebiten

package main

import (
	"log/slog"
	"os"
)

func main() {
	slog.Error("cmd/ca was built without the GUI",
		"rebuild", "go build -tags ebiten ./cmd/ca",
		"terminal", "go run ./cmd/smoothlife",
	)
	os.Exit(2)
}
