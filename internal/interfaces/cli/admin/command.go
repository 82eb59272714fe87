package admin

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"replydesk/internal/domain/user"
	"replydesk/internal/infrastructure/auth"
	"replydesk/internal/infrastructure/config"
	"replydesk/internal/infrastructure/database"
	"replydesk/internal/infrastructure/repository"
	"replydesk/internal/shared/authorization"
	"replydesk/internal/shared/logger"
	"replydesk/internal/shared/utils"
)

var (
	env   string
	email string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative account tools",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newCreateCommand())

	return cmd
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an admin account",
		Long:  `Create an administrator account. The password is read interactively and never echoed.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address for the admin account (required)")
	cmd.MarkFlagRequired("email")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	password, err := promptPassword()
	if err != nil {
		return err
	}

	input := struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}{Email: email, Password: password}
	if err := utils.ValidateStruct(input); err != nil {
		return err
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(database.Get(), logger.NewLogger())

	existing, err := userRepo.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("an account with email %s already exists", email)
	}

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	account, err := user.NewUser(email, hash, authorization.RoleAdmin, nil)
	if err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	if err := userRepo.Create(ctx, account); err != nil {
		return fmt.Errorf("failed to persist admin account: %w", err)
	}

	fmt.Printf("Admin account %s created\n", email)
	return nil
}

func promptPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Fprint(os.Stderr, "Confirm password: ")
	confirm, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password confirmation: %w", err)
	}

	if string(password) != string(confirm) {
		return "", fmt.Errorf("passwords do not match")
	}

	return string(password), nil
}
