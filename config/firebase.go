package config

import (
	"context"
	"encoding/json"
	"log"
	"os"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"
)

// InitFirebase initializes the Firebase Admin SDK and returns a Realtime
// Database client. Startup aborts when the service account JSON or the
// database URL is missing or incomplete.
func InitFirebase() *db.Client {
	ctx := context.Background()

	serviceAccount := os.Getenv("FIREBASE_SERVICE_ACCOUNT_KEY")
	databaseURL := os.Getenv("FIREBASE_DATABASE_URL")

	var creds struct {
		ProjectID  string `json:"project_id"`
		PrivateKey string `json:"private_key"`
	}
	if serviceAccount != "" {
		if err := json.Unmarshal([]byte(serviceAccount), &creds); err != nil {
			log.Fatalf("FIREBASE_SERVICE_ACCOUNT_KEY is not valid JSON: %v", err)
		}
	}

	if creds.ProjectID == "" || creds.PrivateKey == "" || databaseURL == "" {
		log.Fatal("Firebase configuration is missing or incomplete")
	}

	opt := option.WithCredentialsJSON([]byte(serviceAccount))
	config := &firebase.Config{
		ProjectID:   creds.ProjectID,
		DatabaseURL: databaseURL,
	}

	app, err := firebase.NewApp(ctx, config, opt)
	if err != nil {
		log.Fatalf("error initializing firebase app: %v", err)
	}

	client, err := app.Database(ctx)
	if err != nil {
		log.Fatalf("error initializing firebase database client: %v", err)
	}

	log.Printf("Connected to Firebase Realtime Database (project %s)", creds.ProjectID)
	return client
}
