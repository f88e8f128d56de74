package main

import (
	"os"

	"github.com/beheryahmed1991/subscription-tracker/cmd"
)

// @title Subscription Tracker
// @version 1.0
// @description REST API for tracking recurring subscriptions
// @host localhost:3001
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
