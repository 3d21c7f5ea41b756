package log

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/somosmas/ong-api/utils/dotenv"
	"github.com/somosmas/ong-api/utils/flag"
)

// global accessible logger
var (
	logger *logrus.Logger
	Log    *logrus.Entry
)

// This init is for testing cases where the entry point is not a main
// function; unit tests would hit a nil entry otherwise.
func init() {
	InitLogger()
}

func InitLogger() {
	logger = logrus.New()
	logger.SetOutput(os.Stderr)

	// JSON in prod for log collection, plain text elsewhere for
	// readability.
	if os.Getenv("ONG_ENV") == dotenv.ProdEnv {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	Log = logger.WithFields(
		logrus.Fields{"service": flag.ServiceName, "is_development": os.Getenv("ONG_ENV") != dotenv.ProdEnv},
	)
}
