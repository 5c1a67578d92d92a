package main

import (
	"context"
	"fmt"
	"io"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/fsdevblog/tinyurl/internal/app"
	"github.com/fsdevblog/tinyurl/internal/bmeta"
	"github.com/fsdevblog/tinyurl/internal/config"
	"github.com/fsdevblog/tinyurl/internal/models"
	"github.com/fsdevblog/tinyurl/internal/services"
)

const commandTimeout = 30 * time.Second

type rootOptions struct {
	dsn         string
	sqlitePath  string
	storagePath string
	logLevel    string
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "urlctl",
		Short:        "Управление короткими ссылками",
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.PersistentFlags().StringVarP(&opts.dsn, "dsn", "d", "", "Строка подключения к PostgreSQL (DATABASE_DSN)")
	root.PersistentFlags().StringVarP(&opts.sqlitePath, "sqlite", "s", "", "Путь к базе sqlite (SQLITE_PATH)")
	root.PersistentFlags().StringVarP(&opts.storagePath, "file", "f", "", "Файл бекапа хранилища в памяти (FILE_STORAGE_PATH)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Уровень логирования")

	root.AddCommand(
		newCreateCmd(opts),
		newResolveCmd(opts),
		newStatsCmd(opts),
		newExpireCmd(opts),
		newPurgeCmd(opts),
		newVersionCmd(),
	)
	return root
}

// loadConfig конфигурация из ENV, поверх которой применяются флаги команды.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	conf, err := config.LoadConfig(nil)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if o.dsn != "" {
		conf.DatabaseDSN = o.dsn
	}
	if o.sqlitePath != "" {
		conf.SQLitePath = o.sqlitePath
	}
	if o.storagePath != "" {
		conf.FileStoragePath = o.storagePath
	}
	if conf.LogLevel == "" {
		conf.LogLevel = o.logLevel
	}
	// Учет переходов из CLI синхронный.
	conf.VisitWorkers = 0
	return conf, nil
}

// withApp открывает хранилище, выполняет fn и сохраняет бекап, если fn изменяет данные.
func (o *rootOptions) withApp(cmd *cobra.Command, mutates bool, fn func(ctx context.Context, a *app.App) error) error {
	conf, err := o.loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	a, err := app.New(ctx, *conf)
	if err != nil {
		return err //nolint:wrapcheck
	}
	defer a.Close()

	if restoreErr := a.RestoreBackup(); restoreErr != nil {
		return restoreErr //nolint:wrapcheck
	}
	if err = fn(ctx, a); err != nil {
		return err
	}
	if mutates {
		a.MakeBackup()
	}
	return nil
}

type urlView struct {
	Code       string     `json:"code"`
	URL        string     `json:"url"`
	CreatedAt  time.Time  `json:"createdAt"`
	ExpiresAt  *time.Time `json:"expiresAt"`
	VisitCount int64      `json:"visitCount"`
	Created    *bool      `json:"created,omitempty"`
}

func newURLView(m *models.URL) urlView {
	return urlView{
		Code:       m.ShortIdentifier,
		URL:        m.URL,
		CreatedAt:  m.CreatedAt,
		ExpiresAt:  m.ExpiresAt,
		VisitCount: m.VisitCount,
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v) //nolint:wrapcheck
}

func newCreateCmd(opts *rootOptions) *cobra.Command {
	var alias string
	var expiresIn time.Duration

	cmd := &cobra.Command{
		Use:   "create <url>",
		Short: "Сократить ссылку",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, true, func(ctx context.Context, a *app.App) error {
				params := services.ShortenParams{URL: args[0], Alias: alias}
				if expiresIn != 0 {
					params.ExpiresIn = &expiresIn
				}
				m, created, err := a.Services.URLService.Shorten(ctx, params)
				if err != nil {
					return err //nolint:wrapcheck
				}
				view := newURLView(m)
				view.Created = &created
				return printJSON(cmd, view)
			})
		},
	}
	cmd.Flags().StringVar(&alias, "alias", "", "Пользовательский идентификатор")
	cmd.Flags().DurationVar(&expiresIn, "expires-in", 0, "Срок жизни ссылки, например 72h")
	return cmd
}

func newResolveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <code>",
		Short: "Получить исходную ссылку (учитывается как переход)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, true, func(ctx context.Context, a *app.App) error {
				target, err := a.Services.URLService.Resolve(ctx, args[0])
				if err != nil {
					return err //nolint:wrapcheck
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), target)
				return nil
			})
		},
	}
}

func newStatsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <code>",
		Short: "Показать запись и число переходов",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, false, func(ctx context.Context, a *app.App) error {
				m, err := a.Services.URLService.GetByShortIdentifier(ctx, args[0])
				if err != nil {
					return err //nolint:wrapcheck
				}
				return printJSON(cmd, newURLView(m))
			})
		},
	}
}

func newExpireCmd(opts *rootOptions) *cobra.Command {
	var minutes int

	cmd := &cobra.Command{
		Use:   "expire <code>",
		Short: "Изменить срок жизни ссылки в минутах от момента создания (0 - сброс по политике)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, true, func(ctx context.Context, a *app.App) error {
				m, err := a.Services.URLService.UpdateExpiry(ctx, args[0], &minutes)
				if err != nil {
					return err //nolint:wrapcheck
				}
				return printJSON(cmd, newURLView(m))
			})
		},
	}
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Срок в минутах")
	return cmd
}

func newPurgeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "purge",
		Short: "Удалить истекшие ссылки",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApp(cmd, true, func(ctx context.Context, a *app.App) error {
				deleted, err := a.Services.URLService.DeleteExpired(ctx)
				if err != nil {
					return err //nolint:wrapcheck
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted: %d\n", deleted)
				return nil
			})
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Версия сборки",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			bmeta.Fprint(cmd.OutOrStdout(), bmeta.Info{Version: buildVersion, Date: buildDate, Commit: buildCommit})
		},
	}
}
