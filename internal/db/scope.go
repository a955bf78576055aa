package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"
)

var ErrScopeReleased = errors.New("db: scope already released")

// Handle yields the gorm handle for the current unit of work.
type Handle interface {
	DB() (*gorm.DB, error)
}

// Gateway hands out request scopes over a shared pool.
type Gateway struct {
	db *gorm.DB
}

func NewGateway(db *gorm.DB) *Gateway {
	return &Gateway{db: db}
}

func (g *Gateway) Begin(ctx context.Context) *Scope {
	return &Scope{root: g.db, ctx: ctx}
}

// Scope pins one pooled connection for the lifetime of a request. The
// connection is taken on the first DB call, so requests that never reach the
// store never hold one.
type Scope struct {
	root *gorm.DB
	ctx  context.Context

	mu       sync.Mutex
	conn     *sql.Conn
	handle   *gorm.DB
	released bool
}

func (s *Scope) DB() (*gorm.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.released {
		return nil, ErrScopeReleased
	}
	if s.handle != nil {
		return s.handle, nil
	}

	sqlDB, err := s.root.DB()
	if err != nil {
		return nil, fmt.Errorf("db: get sql.DB: %w", err)
	}

	conn, err := sqlDB.Conn(s.ctx)
	if err != nil {
		return nil, fmt.Errorf("db: acquire connection: %w", err)
	}

	// WithContext clones the statement, so the pinned pool stays local to
	// this scope.
	handle := s.root.WithContext(s.ctx)
	handle.Statement.ConnPool = conn

	s.conn = conn
	s.handle = handle
	return handle, nil
}

// Acquired reports whether a connection has been taken from the pool.
func (s *Scope) Acquired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn != nil
}

func (s *Scope) Release() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.released = true
	s.handle = nil
	if s.conn == nil {
		return nil
	}

	err := s.conn.Close()
	s.conn = nil
	return err
}

type static struct {
	db *gorm.DB
}

// Static adapts a plain *gorm.DB for callers outside a request.
func Static(db *gorm.DB) Handle {
	return static{db: db}
}

func (s static) DB() (*gorm.DB, error) {
	return s.db, nil
}
