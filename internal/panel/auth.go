package panel

import (
	"context"
	"sync"

	"medinfo-be/internal/pkg/logger"
	"medinfo-be/pkg/client"
)

type Mode int

const (
	ModeLogin Mode = iota
	ModeRegister
)

func (m Mode) String() string {
	if m == ModeRegister {
		return "register"
	}
	return "login"
}

type Authenticator interface {
	Login(ctx context.Context, username, password string) (*client.LoginResult, error)
	Register(ctx context.Context, username, password string) error
}

type AuthState struct {
	Mode    Mode
	Loading bool
	Err     string
}

// AuthController collects credentials and signs the user in on success.
type AuthController struct {
	api    Authenticator
	holder *SessionHolder
	logger logger.ILogger

	mu    sync.Mutex
	state AuthState
}

func NewAuthController(api Authenticator, holder *SessionHolder, log logger.ILogger) *AuthController {
	return &AuthController{
		api:    api,
		holder: holder,
		logger: log,
	}
}

func (c *AuthController) State() AuthState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *AuthController) SetMode(mode Mode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Mode = mode
	c.state.Err = ""
}

func (c *AuthController) Toggle() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Mode == ModeLogin {
		c.state.Mode = ModeRegister
	} else {
		c.state.Mode = ModeLogin
	}
	c.state.Err = ""
	return c.state.Mode
}

// Submit posts the credentials to the endpoint of the current mode. On
// success the username becomes the session; the response body is ignored.
func (c *AuthController) Submit(ctx context.Context, username, password string) error {
	c.mu.Lock()
	mode := c.state.Mode
	c.state.Loading = true
	c.state.Err = ""
	c.mu.Unlock()

	var err error
	if mode == ModeRegister {
		err = c.api.Register(ctx, username, password)
	} else {
		_, err = c.api.Login(ctx, username, password)
	}
	if err == nil {
		err = c.holder.SignIn(username)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Loading = false
	if err != nil {
		c.state.Err = errorText(err)
		c.logger.Warn("Auth", "Authentication failed", map[string]interface{}{
			"mode":     mode.String(),
			"username": username,
			"error":    err.Error(),
		})
		return err
	}

	c.logger.Info("Auth", "Signed in", map[string]interface{}{"mode": mode.String(), "username": username})
	return nil
}
