// Command createadmin provisions an administrator credential out of band.
// It is invoked manually by an operator with direct database access; the
// running application has no registration surface.
//
// Usage:
//
//	MONGODB_URI=... go run ./cmd/createadmin --email admin@campus.edu --password Secret123
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"campusfix-be/config"
	"campusfix-be/models"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	var email, password string

	rootCmd := &cobra.Command{
		Use:   "createadmin",
		Short: "Create or promote an administrator credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(email, password)
		},
	}

	rootCmd.Flags().StringVar(&email, "email", "", "administrator email")
	rootCmd.Flags().StringVar(&password, "password", "", "administrator password")
	rootCmd.MarkFlagRequired("email")
	rootCmd.MarkFlagRequired("password")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(email, password string) error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	if config.DemoMode() {
		return fmt.Errorf("MONGODB_URI must be set to provision an administrator")
	}

	adminCollection := config.GetCollection("admins")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var existing models.Admin
	err := adminCollection.FindOne(ctx, bson.M{"email": email}).Decode(&existing)
	switch {
	case err == nil:
		// Already provisioned: make sure the capability flag is set.
		update := bson.M{"$set": bson.M{"admin": true, "updatedAt": time.Now()}}
		if _, err := adminCollection.UpdateOne(ctx, bson.M{"_id": existing.ID}, update); err != nil {
			return fmt.Errorf("promote existing admin: %w", err)
		}
		fmt.Printf("Admin already exists: %s\n", existing.ID.Hex())

	case err == mongo.ErrNoDocuments:
		admin := models.Admin{
			Email:     email,
			Password:  password,
			IsAdmin:   true,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := admin.HashPassword(); err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		result, err := adminCollection.InsertOne(ctx, admin)
		if err != nil {
			return fmt.Errorf("create admin: %w", err)
		}
		fmt.Printf("Created admin: %v\n", result.InsertedID)

	default:
		return fmt.Errorf("look up admin: %w", err)
	}

	fmt.Println("\nAdmin ready. Sign in via POST /api/auth/login using:")
	fmt.Println("  email:", email)
	return nil
}
