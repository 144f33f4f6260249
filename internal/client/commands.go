package client

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

const (
	flagUsername    = "username"
	flagPassword    = "password"
	flagName        = "name"
	flagDescription = "description"
	flagStatus      = "status"
)

func credentialFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: flagUsername, Aliases: []string{"u"}, Usage: "account name", Required: true},
		&cli.StringFlag{Name: flagPassword, Aliases: []string{"p"}, Usage: "account password", Required: true},
	}
}

func credentialsFromFlags(cmd *cli.Command) models.Credentials {
	return models.Credentials{
		Username: cmd.String(flagUsername),
		Password: cmd.String(flagPassword),
	}
}

func (a *App) registerCommand() *cli.Command {
	return &cli.Command{
		Name:  "register",
		Usage: "create a new account",
		Flags: credentialFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := a.connect(cmd, false)
			if err != nil {
				return err
			}

			credentials := credentialsFromFlags(cmd)
			if err = s.adapter.Register(ctx, credentials); err != nil {
				return fmt.Errorf("register: %w", err)
			}

			fmt.Fprintf(a.out, "User %q registered. Run login to start a session.\n", credentials.Username)
			return nil
		},
	}
}

func (a *App) loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "log in and store the session token",
		Flags: credentialFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := a.connect(cmd, false)
			if err != nil {
				return err
			}

			credentials := credentialsFromFlags(cmd)
			token, err := s.adapter.Login(ctx, credentials)
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}

			if err = s.tokens.Save(token); err != nil {
				return err
			}
			s.logger.Debug().Str("token_file", s.tokens.Path()).Msg("session token stored")

			fmt.Fprintf(a.out, "Logged in as %q.\n", credentials.Username)
			return nil
		},
	}
}

func (a *App) logoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "discard the stored session token",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if err := NewTokenFile(cmd.String(flagTokenFile)).Remove(); err != nil {
				return err
			}

			fmt.Fprintln(a.out, "Logged out.")
			return nil
		},
	}
}

func (a *App) whoamiCommand() *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "show the user of the stored session",
		Action: func(_ context.Context, cmd *cli.Command) error {
			raw, err := NewTokenFile(cmd.String(flagTokenFile)).Load()
			if err != nil {
				return err
			}

			token, err := utils.ParseUnverifiedToken(raw)
			if err != nil {
				return fmt.Errorf("stored token is unreadable, run login again: %w", err)
			}

			fmt.Fprintln(a.out, token.Username)
			if token.ExpiresAt != nil {
				expires := token.ExpiresAt.Time
				state := "valid until"
				if time.Now().After(expires) {
					state = "expired at"
				}
				fmt.Fprintf(a.out, "session %s %s\n", state, expires.Local().Format(time.DateTime))
			}
			return nil
		},
	}
}

func (a *App) listCommand() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "list your tasks",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := a.connect(cmd, true)
			if err != nil {
				return err
			}

			tasks, err := s.adapter.ListTasks(ctx)
			if err != nil {
				return sessionError("list tasks", err)
			}

			if len(tasks) == 0 {
				fmt.Fprintln(a.out, "No tasks found.")
				return nil
			}

			fmt.Fprintln(a.out, renderTasks(tasks))
			return nil
		},
	}
}

func (a *App) addCommand() *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "create a task",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: flagName, Aliases: []string{"n"}, Usage: "task name", Required: true},
			&cli.StringFlag{Name: flagDescription, Aliases: []string{"d"}, Usage: "task description"},
			&cli.StringFlag{Name: flagStatus, Usage: `"Pending", "In Progress" or "Completed" (default "Pending")`},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			task := models.Task{
				Name:        cmd.String(flagName),
				Description: cmd.String(flagDescription),
			}
			if cmd.IsSet(flagStatus) {
				status, err := parseStatus(cmd.String(flagStatus))
				if err != nil {
					return err
				}
				task.Status = status
			}

			s, err := a.connect(cmd, true)
			if err != nil {
				return err
			}

			created, err := s.adapter.CreateTask(ctx, task)
			if err != nil {
				return sessionError("create task", err)
			}

			fmt.Fprintln(a.out, renderTask(created))
			return nil
		},
	}
}

func (a *App) updateCommand() *cli.Command {
	return &cli.Command{
		Name:      "update",
		Usage:     "change the name, description or status of a task",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: flagName, Aliases: []string{"n"}, Usage: "new task name"},
			&cli.StringFlag{Name: flagDescription, Aliases: []string{"d"}, Usage: "new task description"},
			&cli.StringFlag{Name: flagStatus, Usage: `new status: "Pending", "In Progress" or "Completed"`},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			taskID, err := taskIDArg(cmd)
			if err != nil {
				return err
			}

			update, err := updateFromFlags(cmd)
			if err != nil {
				return err
			}

			s, err := a.connect(cmd, true)
			if err != nil {
				return err
			}

			updated, err := s.adapter.UpdateTask(ctx, taskID, update)
			if err != nil {
				return sessionError("update task", err)
			}

			fmt.Fprintln(a.out, renderTask(updated))
			return nil
		},
	}
}

func (a *App) deleteCommand() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm"},
		Usage:     "delete a task",
		ArgsUsage: "<id>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			taskID, err := taskIDArg(cmd)
			if err != nil {
				return err
			}

			s, err := a.connect(cmd, true)
			if err != nil {
				return err
			}

			if err = s.adapter.DeleteTask(ctx, taskID); err != nil {
				return sessionError("delete task", err)
			}

			fmt.Fprintf(a.out, "Task %d deleted.\n", taskID)
			return nil
		},
	}
}

func (a *App) versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "show client build info and server version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fmt.Fprintf(a.out, "Client version: %s\n", a.buildInfo.BuildVersion())
			fmt.Fprintf(a.out, "Client build date: %s\n", a.buildInfo.BuildDate())
			fmt.Fprintf(a.out, "Client build commit: %s\n", a.buildInfo.BuildCommit())

			s, err := a.connect(cmd, false)
			if err != nil {
				return err
			}

			version, err := s.adapter.Version(ctx)
			if err != nil {
				return fmt.Errorf("server version: %w", err)
			}

			fmt.Fprintf(a.out, "Server version: %s\n", version)
			return nil
		},
	}
}

func taskIDArg(cmd *cli.Command) (int64, error) {
	raw := cmd.Args().First()
	if raw == "" {
		return 0, ErrMissingTaskID
	}

	taskID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || taskID <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTaskID, raw)
	}
	return taskID, nil
}

// updateFromFlags sends only the fields whose flags were given, so an
// explicitly empty --description clears the description.
func updateFromFlags(cmd *cli.Command) (models.TaskUpdate, error) {
	var update models.TaskUpdate

	if cmd.IsSet(flagName) {
		name := cmd.String(flagName)
		update.Name = &name
	}
	if cmd.IsSet(flagDescription) {
		description := cmd.String(flagDescription)
		update.Description = &description
	}
	if cmd.IsSet(flagStatus) {
		status, err := parseStatus(cmd.String(flagStatus))
		if err != nil {
			return models.TaskUpdate{}, err
		}
		update.Status = &status
	}

	if update.IsEmpty() {
		return models.TaskUpdate{}, ErrNothingToUpdate
	}
	return update, nil
}

func parseStatus(raw string) (models.TaskStatus, error) {
	status := models.TaskStatus(raw)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: got %q", ErrInvalidStatus, raw)
	}
	return status, nil
}

// sessionError adds a login hint to errors caused by a missing or stale
// session token.
func sessionError(op string, err error) error {
	if errors.Is(err, adapter.ErrUnauthorized) || errors.Is(err, adapter.ErrForbidden) {
		return fmt.Errorf("%s: %w (run login again)", op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
