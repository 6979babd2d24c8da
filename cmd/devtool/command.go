package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/osse101/PetBot_Go/internal/config"
)

const (
	appName       = "petbot"
	confirmYes    = "yes"
	maintenanceDB = "postgres"
)

// Command is a devtool subcommand
type Command interface {
	Name() string
	Description() string
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

// Registry holds the available commands
type Registry struct {
	commands map[string]Command
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds cmd under its name
func (r *Registry) Register(cmd Command) {
	r.commands[cmd.Name()] = cmd
}

// Get looks up a command by name
func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns the commands sorted by name
func (r *Registry) List() []Command {
	cmds := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].Name() < cmds[j].Name()
	})
	return cmds
}

// PrintHelp prints the usage information
func (r *Registry) PrintHelp() {
	fmt.Printf("Usage: devtool <command> [args...]  (%s)\n", appName)
	fmt.Println("\nAvailable Commands:")

	cmds := r.List()
	maxLen := 0
	for _, cmd := range cmds {
		if len(cmd.Name()) > maxLen {
			maxLen = len(cmd.Name())
		}
	}
	for _, cmd := range cmds {
		padding := maxLen - len(cmd.Name()) + 2
		fmt.Printf("  %s%*s%s\n", cmd.Name(), padding, "", cmd.Description())
	}
}

// adminConnString points at the maintenance database on the configured
// server, for creating and dropping the application database.
func adminConnString(cfg *config.Config) string {
	admin := *cfg
	admin.DBName = maintenanceDB
	return admin.GetDBConnString()
}
