package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// AuthorEnvVar holds a comma-separated author allow-list.
const AuthorEnvVar = "author_name"

// LoadDotEnv pulls a .env file into the environment when one exists.
// A missing file is not an error.
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return ConfigError{Op: "dotenv", Err: err}
	}
	return nil
}

// AuthorsFromEnv parses the author allow-list from the environment.
// Empty or absent means no author filtering.
func AuthorsFromEnv() []string {
	var authors []string
	for _, name := range strings.Split(os.Getenv(AuthorEnvVar), ",") {
		if name = strings.TrimSpace(name); name != "" {
			authors = append(authors, name)
		}
	}
	return authors
}
