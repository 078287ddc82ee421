package services

import (
	"os"
	"testing"

	"github.com/brycegym/gymapp-backend/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.InitLogger()
	os.Exit(m.Run())
}
