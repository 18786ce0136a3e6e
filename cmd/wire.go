package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/bnema/devconnect-cli/internal/adapters/api"
	tomlconfig "github.com/bnema/devconnect-cli/internal/adapters/config/toml"
	"github.com/bnema/devconnect-cli/internal/adapters/credentials"
	"github.com/bnema/devconnect-cli/internal/adapters/logging"
	"github.com/bnema/devconnect-cli/internal/adapters/render/social"
	chainstore "github.com/bnema/devconnect-cli/internal/adapters/secrets/chain"
	"github.com/bnema/devconnect-cli/internal/application"
	"github.com/bnema/devconnect-cli/internal/ports"
	"github.com/bnema/devconnect-cli/internal/version"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const configPathEnv = "DEVCONNECT_CONFIG"

type app struct {
	settings    tomlconfig.Settings
	logger      zerolog.Logger
	credentials *credentials.Store
	auth        *api.AuthAPI
	client      *api.Client
	session     *application.SessionStore
	notes       *application.NotificationCenter
	feed        *application.Feed
	comments    *application.Comments
	directory   *application.Directory
	navigator   *loginNavigator
	render      func(social.Document, social.RenderOptions) (string, error)
	now         func() time.Time

	wireErr error
}

func loadSettings() (tomlconfig.Settings, error) {
	settings, err := tomlconfig.Load(viper.New(), envOrDefault(configPathEnv, ""))
	if err != nil {
		return tomlconfig.Settings{}, fmt.Errorf("load settings: %w", err)
	}
	return settings, nil
}

func wireApp() (*app, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(os.Stderr, logging.Options{Level: settings.Log.Level, Format: settings.Log.Format})
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	secrets, err := chainstore.Open(chainstore.Backend(settings.Credentials.Backend), settings.Credentials.Dir, logger)
	if err != nil {
		return nil, fmt.Errorf("wire secret store: %w", err)
	}
	creds := credentials.NewStore(secrets, settings.Credentials.Profile, logger)

	userAgent := settings.HTTP.UserAgent
	if userAgent == "" {
		userAgent = version.UserAgent()
	}
	transport, err := api.NewTransport(api.Config{
		BaseURL:           settings.API.BaseURL,
		Timeout:           settings.API.Timeout,
		UserAgent:         userAgent,
		AllowInsecureHTTP: settings.API.AllowInsecureHTTP,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("wire api transport: %w", err)
	}

	auth := api.NewAuthAPI(transport)
	session := application.NewSessionStore(auth, creds, logger)
	navigator := &loginNavigator{out: os.Stderr}
	pipeline := api.NewPipeline(transport, creds, auth, session, navigator, logger)
	client := api.NewClient(pipeline, creds)

	notes := application.NewNotificationCenter()
	feed := application.NewFeed(client, notes)

	return &app{
		settings:    settings,
		logger:      logger,
		credentials: creds,
		auth:        auth,
		client:      client,
		session:     session,
		notes:       notes,
		feed:        feed,
		comments:    application.NewComments(client, feed, notes),
		directory:   application.NewDirectory(client, auth, session, notes),
		navigator:   navigator,
		render:      social.Render,
		now:         time.Now,
	}, nil
}

// runE binds the command's stderr to the login redirect and flushes pending
// notifications once the command has run, whether or not it failed. An app that
// could not be wired returns the wiring error instead.
func (a *app) runE(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if a.wireErr != nil {
			return a.wireErr
		}
		a.navigator.setOutput(cmd.ErrOrStderr())
		err := fn(cmd, args)
		a.flushNotifications(cmd.ErrOrStderr())
		return err
	}
}

func (a *app) flushNotifications(out io.Writer) {
	pending := a.notes.List()
	if len(pending) == 0 {
		return
	}

	_, _ = fmt.Fprintln(out, social.RenderNotices(pending))
	for _, n := range pending {
		a.notes.Remove(n.ID)
	}
}

const sessionExpiredHint = "Session expired. Run `dc auth login` to sign in again."

// loginNavigator is the terminal's stand-in for the login screen: it tells the
// user to sign in again, once per process.
type loginNavigator struct {
	mu   sync.Mutex
	out  io.Writer
	once sync.Once
}

var _ ports.Navigator = (*loginNavigator)(nil)

func (n *loginNavigator) setOutput(out io.Writer) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.out = out
}

func (n *loginNavigator) RedirectToLogin(_ context.Context, _ error) {
	n.once.Do(func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		_, _ = fmt.Fprintln(n.out, sessionExpiredHint)
	})
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
