package main

import (
	"log"
	"os"

	"planner/cmd/server/commands"
	_ "planner/docs"

	"github.com/spf13/cobra"
)

// @title           Event Planner API
// @version         1.0
// @description     Plan events and track their tasks, attendees and notes.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

// @schemes http
func main() {
	rootCmd := &cobra.Command{
		Use:   "planner",
		Short: "Event planner server",
	}

	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewUserCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
