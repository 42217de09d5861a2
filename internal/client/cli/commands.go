package cli

import (
	"context"
	"os"
	"time"
)

// Run исполняет команду. Ошибки печатаются в stderr, процесс
// завершается с ненулевым кодом.
func (c *Cli) Run(ctx context.Context, command string, args []string, interval time.Duration) {
	var err error

	switch command {
	case "register":
		err = c.runRegister(ctx, args)
	case "add":
		err = c.runAdd(ctx, args)
	case "track":
		err = c.runTrack(ctx, args)
	case "list":
		err = c.runList(ctx, args)
	case "delete":
		err = c.runDelete(ctx, args)
	case "sync":
		err = c.runSync(ctx)
	case "resolve":
		err = c.runResolve(ctx, args)
	case "status":
		err = c.runStatus(ctx)
	case "devices":
		err = c.runDevices(ctx)
	case "watch":
		err = c.runWatch(ctx)
	case "purge":
		err = c.runPurge(ctx, args)
	case "daemon":
		err = c.runDaemon(ctx, interval)
	default:
		c.io.Errorf("Unknown command: %s\n", command)
		PrintUsage()
		os.Exit(1)
	}

	if err != nil {
		c.io.Errorf("Error: %v\n", err)
		os.Exit(1)
	}
}
