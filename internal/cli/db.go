package cli

import (
	"github.com/pankajredekar/productapi/internal/store"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// connectDB opens the store once. A failure is logged and a nil handle is
// returned so the server can still start and answer 500 on data routes.
func connectDB(databaseURL string, maxOpenConns int, logger *zap.Logger) *gorm.DB {
	db, err := store.Open(databaseURL, maxOpenConns)
	if err != nil {
		logger.Error("Database connection failed", zap.Error(err))
		return nil
	}
	logger.Info("Database connection established", zap.String("dialect", db.Dialector.Name()))
	return db
}
