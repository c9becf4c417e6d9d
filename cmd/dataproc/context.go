package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"

	"dataproc/internal/adapters/bfhl"
	"dataproc/internal/platform/config"
	"dataproc/internal/platform/logger"
	sessionmod "dataproc/internal/services/session/module"
	session "dataproc/internal/services/session/service"
	"dataproc/internal/services/session/store"
)

type globalFlags struct {
	baseURL     string
	sessionFile string
	timeout     time.Duration
	verbose     bool
}

type settings struct {
	baseURL     string
	userAgent   string
	sessionFile string
	timeout     time.Duration
}

type commandContext struct {
	flags *globalFlags

	bootOnce sync.Once

	settingsOnce sync.Once
	settings     settings
	settingsErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

// bootstrap loads .env and brings up logging. The CLI logs at error unless
// LOG_LEVEL or --verbose says otherwise.
func (c *commandContext) bootstrap(stderr io.Writer) {
	c.bootOnce.Do(func() {
		envErr := godotenv.Load()

		opts := logger.FromEnv()
		if strings.TrimSpace(os.Getenv("LOG_LEVEL")) == "" {
			opts.Level = "error"
		}
		if c.flags.verbose {
			opts.Level = "debug"
		}
		opts.Component = "cli"
		logger.Init(opts)

		if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
			fmt.Fprintf(stderr, "warning: could not read .env: %v\n", envErr)
		}
	})
}

// ensureSettings merges flags over DATAPROC_* env. Invalid env values panic
// inside config; they are reported here as errors instead.
func (c *commandContext) ensureSettings() (settings, error) {
	c.settingsOnce.Do(func() {
		defer func() {
			if r := recover(); r != nil {
				c.settingsErr = fmt.Errorf("invalid configuration: %v", r)
			}
		}()
		cfg := config.New().Prefix("DATAPROC_")

		s := settings{
			baseURL:     strings.TrimSpace(c.flags.baseURL),
			sessionFile: strings.TrimSpace(c.flags.sessionFile),
			timeout:     c.flags.timeout,
			userAgent:   cfg.MayString("USER_AGENT", "dataproc-cli"),
		}
		if s.baseURL == "" {
			s.baseURL = cfg.MayURL("API_BASE_URL", "http://localhost:3000")
		}
		if s.timeout <= 0 {
			s.timeout = cfg.MayDuration("HTTP_TIMEOUT", 30*time.Second)
		}
		if s.sessionFile == "" {
			s.sessionFile = cfg.MayPath("SESSION_FILE", store.DefaultPath())
		}
		c.settings = s
	})
	return c.settings, c.settingsErr
}

func (c *commandContext) client() (*bfhl.Client, error) {
	s, err := c.ensureSettings()
	if err != nil {
		return nil, err
	}
	return bfhl.NewClient(bfhl.Options{
		BaseURL:   s.baseURL,
		UserAgent: s.userAgent,
		Timeout:   s.timeout,
	}), nil
}

// withSession hands fn a session service backed by the session file
func (c *commandContext) withSession(fn func(*session.Service, *bfhl.Client) error) error {
	s, err := c.ensureSettings()
	if err != nil {
		return err
	}
	client, err := c.client()
	if err != nil {
		return err
	}
	svc := session.New(sessionmod.RemoteAuth{Client: client}, store.NewFile(s.sessionFile), nil)
	return fn(svc, client)
}
