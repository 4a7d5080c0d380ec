package configuration

import (
	"fmt"

	"github.com/joho/godotenv"
)

// GodotenvProvider reads env-style configuration files through godotenv.
type GodotenvProvider struct{}

func (*GodotenvProvider) Read(filenames ...string) (map[string]string, error) {
	data, err := godotenv.Read(filenames...)
	if err != nil {
		return nil, fmt.Errorf("(config-godotenv) %w", err)
	}

	return data, nil
}
