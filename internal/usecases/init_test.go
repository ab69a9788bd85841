package usecases_test

import (
	"os"
	"testing"

	"orderdesk.backend/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init("production")
	os.Exit(m.Run())
}
