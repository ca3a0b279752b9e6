package service

import (
	"io"
	"log/slog"

	"github.com/xolan/mood/internal/api"
	"github.com/xolan/mood/internal/config"
	"github.com/xolan/mood/internal/session"
	"github.com/xolan/mood/internal/token"
)

// Services holds all service instances used by the application
type Services struct {
	Session *session.Session
	Auth    *AuthService
	Journal *JournalService
	Config  *ConfigService
}

// NewServices creates a new Services instance with default paths.
// The token is kept in the user config directory next to the config file.
func NewServices(cfg config.Config, logger *slog.Logger) (*Services, error) {
	if logger == nil {
		logger = discardLogger()
	}

	tokenPath, err := token.GetTokenPath()
	if err != nil {
		return nil, err
	}

	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	sess := session.New(token.NewFileStore(tokenPath, token.WithLogger(logger)))
	client := api.New(cfg.APIURL, sess,
		api.WithTimeout(cfg.RequestTimeout()),
		api.WithLogger(logger),
	)

	return NewServicesWith(sess, client, configPath, cfg, logger), nil
}

// NewServicesWith creates a new Services instance from explicit collaborators (useful for testing)
func NewServicesWith(sess *session.Session, client *api.Client, configPath string, cfg config.Config, logger *slog.Logger) *Services {
	if logger == nil {
		logger = discardLogger()
	}

	return &Services{
		Session: sess,
		Auth:    NewAuthService(sess, client, logger),
		Journal: NewJournalService(sess, client, logger),
		Config:  NewConfigService(configPath, cfg),
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
