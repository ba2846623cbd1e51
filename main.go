package main

import (
	"github.com/joho/godotenv"

	"gramophone/cmd"
)

func main() {
	// credentials for the optional agent live in the environment
	_ = godotenv.Load()
	cmd.Execute()
}
