package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

type (
	// Properties is the full runtime configuration, read from the
	// environment. A .env file, when present, is loaded first by main.
	Properties struct {
		Port     string             `env:"PORT" envDefault:"3333"`
		Database DatabaseProperties `envPrefix:"DB_"`
		Storage  StorageProperties  `envPrefix:"STORAGE_"`
		S3       S3Properties       `envPrefix:"S3_"`
	}

	DatabaseProperties struct {
		DSN string `env:"DSN" envDefault:"host=localhost user=postgres password=postgres dbname=intranet port=5432 sslmode=disable"`
	}

	// StorageProperties selects the blob driver: "disk" keeps uploads in
	// a local directory, "s3" targets a bucket.
	StorageProperties struct {
		Driver string `env:"DRIVER" envDefault:"disk"`
		Dir    string `env:"DIR" envDefault:"./uploads"`
	}

	S3Properties struct {
		AccountID       string `env:"ACCOUNT_ID"`
		AccessKeyID     string `env:"ACCESS_KEY_ID"`
		AccessKeySecret string `env:"ACCESS_KEY_SECRET"`
		Bucket          string `env:"BUCKET" envDefault:"intranet"`
	}
)

func Load() (*Properties, error) {
	props := &Properties{}
	if err := env.Parse(props); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return props, nil
}
