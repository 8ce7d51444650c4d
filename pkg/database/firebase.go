package database

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

type FirebaseConfig struct {
	ProjectID       string
	CredentialsFile string
}

// Firebase holds the admin SDK app plus the Firestore client derived from it.
// The app is shared with other Firebase services such as Cloud Messaging.
type Firebase struct {
	App       *firebase.App
	Firestore *firestore.Client
}

func NewFirebase(ctx context.Context, config *FirebaseConfig) (*Firebase, error) {
	var opts []option.ClientOption
	if config.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(config.CredentialsFile))
	}

	var appConfig *firebase.Config
	if config.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: config.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get firestore client: %w", err)
	}

	return &Firebase{
		App:       app,
		Firestore: client,
	}, nil
}
