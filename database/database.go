package database

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const StatusOK = "ok"

var ErrUnavailable = errors.New("database unavailable")

// Gateway is the only component that talks to the database. Statements are
// always parameterized; arguments never end up inside the statement text.
type Gateway struct {
	db      *gorm.DB
	openErr error
	status  string
	log     *zap.Logger
}

// Connect opens the pool lazily. A bad or unreachable target does not stop
// the process: the gateway is returned in a failed state and every statement
// reports ErrUnavailable.
func Connect(dsn string, log *zap.Logger) *Gateway {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:            false,
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Error("failed to open database", zap.Error(err))
		return &Gateway{openErr: err, status: err.Error(), log: log}
	}
	return New(db, log)
}

func New(db *gorm.DB, log *zap.Logger) *Gateway {
	return &Gateway{db: db, status: StatusOK, log: log}
}

// CheckHealth issues one liveness statement and records the outcome. The
// recorded value is advisory and is never refreshed by request handling.
func (g *Gateway) CheckHealth(ctx context.Context) string {
	if err := g.Exec(ctx, "SELECT 1"); err != nil {
		g.status = healthMessage(err, g.openErr)
		g.log.Error("Erro na conexão com o banco de dados", zap.String("statusBD", g.status))
		return g.status
	}
	g.status = StatusOK
	g.log.Info("Conexão com o banco de dados estabelecida com sucesso!")
	return g.status
}

func (g *Gateway) Status() string {
	return g.status
}

// Query runs stmt and scans every returned row into dest, which must be a
// pointer to a slice of row structs.
func (g *Gateway) Query(ctx context.Context, dest any, stmt string, args ...any) error {
	if g.db == nil {
		return g.unavailable()
	}
	if err := g.db.WithContext(ctx).Raw(stmt, args...).Scan(dest).Error; err != nil {
		return fmt.Errorf("database.Query: %w", err)
	}
	return nil
}

func (g *Gateway) Exec(ctx context.Context, stmt string, args ...any) error {
	if g.db == nil {
		return g.unavailable()
	}
	if err := g.db.WithContext(ctx).Exec(stmt, args...).Error; err != nil {
		return fmt.Errorf("database.Exec: %w", err)
	}
	return nil
}

func (g *Gateway) Close() error {
	if g.db == nil {
		return nil
	}
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (g *Gateway) unavailable() error {
	return fmt.Errorf("%w: %v", ErrUnavailable, g.openErr)
}

// healthMessage reports the driver's own message, not our wrapping.
func healthMessage(err, openErr error) string {
	if openErr != nil {
		return openErr.Error()
	}
	if inner := errors.Unwrap(err); inner != nil {
		return inner.Error()
	}
	return err.Error()
}
