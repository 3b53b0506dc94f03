package main

import (
	"context"

	"github.com/heartmarshall/mealtrack-backend/internal/cli"
)

func main() {
	cli.Execute(context.Background())
}
