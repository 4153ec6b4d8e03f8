package main

import (
	"context"
	"os"
	"registration-service/internal/app/config"
	"registration-service/internal/app/drivers/database"
	"registration-service/internal/app/drivers/logger"
	"registration-service/internal/app/services/core/accounts"
	"registration-service/internal/app/services/core/auth"
	"registration-service/internal/pkg/constvars"
	"registration-service/internal/pkg/dto/requests"
	"registration-service/internal/pkg/exceptions"
	"registration-service/internal/pkg/utils"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed data for the hospital registration service",
	}
	rootCmd.AddCommand(frontDeskCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func frontDeskCmd() *cobra.Command {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	cmd := &cobra.Command{
		Use:   "frontdesk",
		Short: "Create the front desk staff account if it does not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.NewLogrusLogger(driverConfig, internalConfig)

			name, _ := cmd.Flags().GetString("name")
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")

			request := &requests.CreateAccount{
				Name:     name,
				Email:    email,
				Password: password,
				Role:     constvars.RoleFrontDesk,
			}
			utils.SanitizeCreateAccountRequest(request)
			if err := utils.ValidateStruct(request); err != nil {
				log.WithField("reason", exceptions.FormatAllValidationErrors(err)).Error("invalid seed account")
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			mongoDB := database.NewMongoDB(driverConfig)
			defer mongoDB.Client().Disconnect(context.Background())

			if err := database.EnsureIndexes(ctx, mongoDB); err != nil {
				log.WithError(err).Error("failed to ensure indexes")
				return err
			}

			zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
			defer zapLogger.Sync()

			accountRepository := accounts.NewAccountMongoRepository(mongoDB, zapLogger)
			authUsecase := auth.NewAuthUsecase(accountRepository, internalConfig, zapLogger)

			account, created, err := authUsecase.EnsureAccount(ctx, request)
			if err != nil {
				log.WithError(err).Error("failed to seed front desk account")
				return err
			}

			fields := logrus.Fields{
				"account_id": account.ID,
				"email":      account.Email,
				"role":       account.Role,
			}
			if !created {
				log.WithFields(fields).Info("front desk account already exists")
				return nil
			}
			log.WithFields(fields).Info("front desk account created")
			return nil
		},
	}

	cmd.Flags().String("name", internalConfig.Seed.Name, "Display name of the account")
	cmd.Flags().String("email", internalConfig.Seed.Email, "Login email of the account")
	cmd.Flags().String("password", internalConfig.Seed.Password, "Initial password of the account")
	return cmd
}
