package main

import (
	"fmt"
	"os"

	_ "github.com/sm8ta/webike_theft_registry/docs"
)

// @title Bike Theft Registry API
// @version 1.0
// @description Register bikes, report thefts, search stolen and found bikes, and earn badges.

// @host localhost:8081
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
