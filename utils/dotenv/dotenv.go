package dotenv

import (
	"os"
	"regexp"

	"github.com/joho/godotenv"
)

// Runtime environments recognized in ONG_ENV.
const (
	DevEnv  = "dev"
	TestEnv = "test"
	ProdEnv = "prod"
)

// LoadDotEnvs loads the .env file family following the convention:
// https://github.com/bkeepers/dotenv#what-other-env-files-can-i-use
// Call once in main; everything else reads os.Getenv during runtime.
func LoadDotEnvs() error {
	loadDotEnvs("")
	return nil
}

func loadDotEnvs(rootPath string) {
	env := os.Getenv("ONG_ENV")
	if env == "" {
		env = DevEnv
	}

	// .env.[runtime_env].local has highest priority, usually credentials
	godotenv.Load(rootPath + ".env." + env + ".local")
	godotenv.Load(rootPath + ".env.local")
	// .env.[runtime_env] usually carries db connection information
	godotenv.Load(rootPath + ".env." + env)
	// .env holds shared variables, overridden by everything above
	godotenv.Load(rootPath + ".env")
}

// LoadDotEnvsInTests resolves the repo root from the test's working
// directory first, a workaround for godotenv resolving paths relative
// to the package under test.
func LoadDotEnvsInTests() error {
	re := regexp.MustCompile(`^(.*ong-api)`)
	cwd, _ := os.Getwd()
	rootPath := re.Find([]byte(cwd))

	godotenv.Load(string(rootPath) + "/" + ".env.test")
	return nil
}
