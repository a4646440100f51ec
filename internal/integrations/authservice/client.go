package authservice

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/m04kA/SMC-StationBooking/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Client справочник учетных записей, заполняемый из конфигурации
type Client struct {
	accounts map[string]Account
	log      Logger
}

// NewClient создает справочник из списка учетных записей
func NewClient(accounts []Account, log Logger) (*Client, error) {
	c := &Client{
		accounts: make(map[string]Account, len(accounts)),
		log:      log,
	}

	for _, acc := range accounts {
		if acc.Username == "" {
			return nil, fmt.Errorf("%w: empty username", ErrInvalidAccount)
		}
		if !acc.Role.IsValid() {
			return nil, fmt.Errorf("%w: unknown role %q for %s", ErrInvalidAccount, acc.Role, acc.Username)
		}
		if _, dup := c.accounts[acc.Username]; dup {
			return nil, fmt.Errorf("%w: duplicate username %s", ErrInvalidAccount, acc.Username)
		}
		c.accounts[acc.Username] = acc
	}

	return c, nil
}

// Lookup ищет пользователя по логину и паролю
func (c *Client) Lookup(ctx context.Context, username, password string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	acc, ok := c.accounts[username]
	if !ok || subtle.ConstantTimeCompare([]byte(acc.Password), []byte(password)) != 1 {
		c.log.Warn("Lookup: invalid credentials for username=%s", username)
		return nil, ErrUserNotFound
	}

	c.log.Info("Lookup: user=%s authenticated, role=%s", username, acc.Role)
	return &domain.User{ID: acc.Username, Role: acc.Role}, nil
}
