package main

import (
	"fmt"
	"sync"

	"neurostudy-be/internal/bootstrap"
	"neurostudy-be/internal/config"
	"neurostudy-be/internal/model"
	"neurostudy-be/pkg/database"
)

// commandContext builds the container on first use so commands like
// "subjects" never touch the database.
type commandContext struct {
	dbFlag string

	once      sync.Once
	cfg       *config.Config
	container *bootstrap.Container
	owned     bool
	err       error
}

func newCommandContext() *commandContext {
	return &commandContext{}
}

// newCommandContextWith skips config loading, for tests.
func newCommandContextWith(cfg *config.Config, container *bootstrap.Container) *commandContext {
	c := &commandContext{cfg: cfg, container: container}
	c.once.Do(func() {})
	return c
}

func (c *commandContext) config() *config.Config {
	if c.cfg == nil {
		c.cfg = config.Load()
		if c.dbFlag != "" {
			c.cfg.Database.Connection = c.dbFlag
		}
	}
	return c.cfg
}

func (c *commandContext) ensureContainer() (*bootstrap.Container, error) {
	c.once.Do(func() {
		cfg := c.config()

		db, err := database.NewGormDB(database.Options{
			Driver:   cfg.Database.Driver,
			DSN:      cfg.Database.Connection,
			LogLevel: database.LevelFor(true),
		})
		if err != nil {
			c.err = fmt.Errorf("open database: %w", err)
			return
		}
		if err := db.AutoMigrate(model.All()...); err != nil {
			c.err = fmt.Errorf("migrate database: %w", err)
			return
		}

		c.container, c.err = bootstrap.NewContainer(db, cfg)
		c.owned = c.err == nil
	})
	return c.container, c.err
}

func (c *commandContext) close() {
	if c.owned {
		c.container.Close()
	}
}
