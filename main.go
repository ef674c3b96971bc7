// Package main はアプリケーションのエントリーポイントを提供します。
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/stsysd/tasktrack/api"
	"github.com/stsysd/tasktrack/config"
	"github.com/stsysd/tasktrack/db"
	"github.com/stsysd/tasktrack/model"
	"github.com/stsysd/tasktrack/notify"
	"github.com/stsysd/tasktrack/store"
	"github.com/stsysd/tasktrack/tracker"
)

var rootCmd = &cobra.Command{
	Use:          "tasktrack",
	Short:        "Multi-tenant project and task tracker",
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, st, err := open()
		if err != nil {
			return err
		}
		defer st.Close()

		// 通知はストアに書き込む。非同期モードではキュー経由で配信する
		var notifier notify.Notifier = notify.NewStoreNotifier(st)
		if cfg.NotifyAsync {
			q := notify.NewQueue(notifier, notify.DefaultQueueSize)
			defer q.Close()
			notifier = q
		}

		svc := newService(cfg, st, notifier)
		if n, err := svc.PurgeSessions(cmd.Context()); err != nil {
			log.Printf("Failed to purge expired sessions: %v", err)
		} else if n > 0 {
			log.Printf("Purged %d expired session(s)", n)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		err = api.NewServer(svc).Run(ctx, ":"+cfg.Port)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and print the schema version",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, st, err := open()
		if err != nil {
			return err
		}
		defer st.Close()

		v, err := st.SchemaVersion()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "schema version %d\n", v)
		return nil
	},
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage user accounts",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all users",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, st, err := open()
		if err != nil {
			return err
		}
		defer st.Close()

		users, err := st.ListUsers(cmd.Context(), false)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, u := range users {
			state := "active"
			if !u.IsActive {
				state = "inactive"
			}
			fmt.Fprintf(out, "%d\t%s\t%s\t%s\t%s\n", u.ID, u.Email, u.Name, u.Role, state)
		}
		return nil
	},
}

func roleCommand(use, short string, role model.Role) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <email>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, st, err := open()
			if err != nil {
				return err
			}
			defer st.Close()

			user, err := newService(cfg, st, nil).SetRoleByEmail(cmd.Context(), args[0], role)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", user.Email, user.Role)
			return nil
		},
	}
}

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Manage login sessions",
}

var sessionsPurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete expired sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, st, err := open()
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := newService(cfg, st, nil).PurgeSessions(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "purged %d session(s)\n", n)
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate an empty database with demo data",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, st, err := open()
		if err != nil {
			return err
		}
		defer st.Close()

		return seed(cmd.Context(), newService(cfg, st, notify.NewStoreNotifier(st)), cmd)
	},
}

func init() {
	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(roleCommand("promote", "Grant the admin role", model.RoleAdmin))
	usersCmd.AddCommand(roleCommand("demote", "Revoke the admin role", model.RoleDeveloper))
	sessionsCmd.AddCommand(sessionsPurgeCmd)

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(seedCmd)
}

// open は設定を読み込み、マイグレーション済みのストアを開きます。
func open() (*config.Config, *store.SQLiteStore, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, err
	}

	// SQLiteストアの初期化（マイグレーション関数を渡す）
	st, err := store.NewSQLiteStore(cfg.DataDir, db.Migrate)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize SQLite store: %w", err)
	}
	return cfg, st, nil
}

func newService(cfg *config.Config, st store.Store, notifier notify.Notifier) *tracker.Service {
	return tracker.NewService(st, notifier, tracker.Options{
		AdminEmails: cfg.AdminEmails,
		SessionTTL:  cfg.SessionTTL,
	})
}

// seed はデモ用の管理者、開発者、プロジェクト、タスクを作成します。
func seed(ctx context.Context, svc *tracker.Service, cmd *cobra.Command) error {
	admin, _, err := svc.SignUp(ctx, "Demo Admin", "admin@demo.local")
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return errors.New("database already seeded")
		}
		return err
	}
	if admin, err = svc.SetRoleByEmail(ctx, admin.Email, model.RoleAdmin); err != nil {
		return err
	}
	dev, _, err := svc.SignUp(ctx, "Demo Developer", "dev@demo.local")
	if err != nil {
		return err
	}

	p := admin.Principal()
	project, err := svc.CreateProject(ctx, p, tracker.CreateProjectInput{
		Name:        "E-commerce Platform",
		Description: "Online storefront with checkout",
	})
	if err != nil {
		return err
	}
	module, err := svc.CreateModule(ctx, p, tracker.CreateModuleInput{
		Name:      "Authentication",
		Priority:  model.PriorityHigh,
		ProjectID: project.ID,
		Functionalities: []*model.Functionality{
			{Name: "Login form", Type: model.FunctionalityFrontend},
			{Name: "Session API", Type: model.FunctionalityAPI},
		},
	})
	if err != nil {
		return err
	}

	titles := []string{"Implement login endpoint", "Build login form", "Write session tests"}
	for _, title := range titles {
		task, err := svc.CreateTask(ctx, p, tracker.CreateTaskInput{
			Title:           title,
			Priority:        model.PriorityMedium,
			ProjectID:       project.ID,
			TaskLinks:       model.TaskLinks{ModuleID: &module.ID},
			AssignedUserIDs: []int64{dev.ID},
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created task %d %q\n", task.ID, task.Title)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "seeded project %q with users %s\n", project.Name,
		strings.Join([]string{admin.Email, dev.Email}, ", "))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
