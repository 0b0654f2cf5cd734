package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/vietanh2810/raffles-api/cmd/app"
)

// @title           Raffles API
// @version         1.0
// @description     Events, raffles and their prize photos.
//
// @contact.name   API Support
//
// @BasePath  /api
//
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name session
// @description Session cookie set by /auth/login. Writes also need the X-XSRF-TOKEN header.
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
