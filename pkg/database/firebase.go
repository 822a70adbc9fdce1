package database

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// Clients bundles the Firebase-backed service clients the application needs.
type Clients struct {
	Firestore *firestore.Client
	Auth      *auth.Client
}

// NewFirebaseClients initializes the Firebase app and returns its Firestore
// and Auth clients. When credentialsFile is empty the SDK falls back to
// application default credentials.
func NewFirebaseClients(ctx context.Context, projectID, credentialsFile string) (*Clients, error) {
	if projectID == "" {
		return nil, fmt.Errorf("project id cannot be empty")
	}

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	fs, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		fs.Close()
		return nil, fmt.Errorf("failed to create auth client: %w", err)
	}

	log.Println("Successfully connected to Firebase services.")
	return &Clients{Firestore: fs, Auth: authClient}, nil
}

// Close releases the underlying Firestore connection.
func (c *Clients) Close() {
	if c != nil && c.Firestore != nil {
		if err := c.Firestore.Close(); err != nil {
			log.Printf("Error closing firestore client: %v", err)
		}
	}
}
