package utils

import (
	"fmt"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const DEV_ENV_FILENAME = ".env.development"
const PROD_ENV_FILENAME = ".env.production"

// InitEnvironmentVariables loads the .env file for goEnv from the working
// directory. Development tolerates a missing file; production does not.
func InitEnvironmentVariables(goEnv string) error {
	envFile := DEV_ENV_FILENAME
	if goEnv == "production" {
		envFile = PROD_ENV_FILENAME
	}

	if err := godotenv.Load(envFile); err != nil {
		if goEnv == "production" {
			return fmt.Errorf("failed to load %s file: %v", envFile, err)
		}

		log.Debugf("no %s file loaded: %v", envFile, err)
	}

	return nil
}
