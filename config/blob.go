package config

import (
	"log"
	"os"
)

// BlobConfig holds the credentials for the blob storage service.
type BlobConfig struct {
	StoreID string
	Token   string
}

// LoadBlobConfig reads blob storage credentials from the environment.
// Startup aborts when either value is missing.
func LoadBlobConfig() *BlobConfig {
	storeID := os.Getenv("V_STORE_ID")
	token := os.Getenv("V_TOKEN")

	if storeID == "" || token == "" {
		log.Fatal("Blob storage configuration is missing or incomplete")
	}

	return &BlobConfig{
		StoreID: storeID,
		Token:   token,
	}
}
