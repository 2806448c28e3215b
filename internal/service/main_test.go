package service

import (
	"os"
	"testing"

	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/tester"
)

func TestMain(m *testing.M) {
	tester.Setup()
	code := m.Run()

	os.Exit(code)
}
