package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var (
	mirrorOnce   sync.Once
	mirrorConfig *MirrorConfig
)

// MirrorConfig holds the credentials for the optional dataset mirror
// (an S3-compatible bucket the raw archives are synced from). An
// empty endpoint disables the mirror stage.
type MirrorConfig struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	UseSSL     bool
	Region     string
	BucketName string
	Prefix     string
}

// Enabled reports whether a mirror endpoint is configured.
func (c *MirrorConfig) Enabled() bool {
	return c.Endpoint != ""
}

func GetMirrorConfig() *MirrorConfig {
	mirrorOnce.Do(func() {
		// Load .env if present, otherwise fall back to the process
		// environment.
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found, falling back to environment variables")
		}

		mirrorConfig = &MirrorConfig{
			Endpoint:   os.Getenv("MIRROR_ENDPOINT"),
			AccessKey:  os.Getenv("MIRROR_ACCESS_KEY"),
			SecretKey:  os.Getenv("MIRROR_SECRET_KEY"),
			UseSSL:     os.Getenv("MIRROR_USE_SSL") == "true",
			Region:     os.Getenv("MIRROR_REGION"),
			BucketName: os.Getenv("MIRROR_BUCKET_NAME"),
			Prefix:     os.Getenv("MIRROR_PREFIX"),
		}
	})
	return mirrorConfig
}
