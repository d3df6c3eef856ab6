package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"admin-srv/internal/docstore"
	docstorePostgre "admin-srv/internal/docstore/postgre"
	"admin-srv/internal/identity/repository"
	identityPostgre "admin-srv/internal/identity/repository/postgre"
	"admin-srv/internal/model"
	"admin-srv/pkg/encrypter"
	"admin-srv/pkg/util"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	errInvalidEmail    = errors.New("invalid email")
	errWeakPassword    = errors.New("password does not meet the policy")
	errInvalidName     = errors.New("first and last name are required")
	errInvalidUserName = errors.New("invalid user name")
)

type adminInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	UserName  string
}

var userInput adminInput

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage console users",
}

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a console user with an account and a profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := createAdmin(
			cmd.Context(),
			identityPostgre.New(db, logger),
			encrypter.New(cfg.Encrypter.Key),
			docstorePostgre.New(db, logger),
			userInput,
			time.Now(),
		)
		if err != nil {
			return err
		}
		fmt.Printf("Created user %s (%s)\n", u.Email, u.ID)
		return nil
	},
}

func init() {
	f := userCreateCmd.Flags()
	f.StringVar(&userInput.Email, "email", "", "login email")
	f.StringVar(&userInput.Password, "password", "", "initial password")
	f.StringVar(&userInput.FirstName, "first-name", "", "first name")
	f.StringVar(&userInput.LastName, "last-name", "", "last name")
	f.StringVar(&userInput.UserName, "user-name", "", "optional user name")
	_ = userCreateCmd.MarkFlagRequired("email")
	_ = userCreateCmd.MarkFlagRequired("password")
	_ = userCreateCmd.MarkFlagRequired("first-name")
	_ = userCreateCmd.MarkFlagRequired("last-name")

	userCmd.AddCommand(userCreateCmd)
}

// createAdmin writes the account row and then the Users profile with the same id.
// The account is deleted again when the profile cannot be written.
func createAdmin(
	ctx context.Context,
	accounts repository.AccountRepository,
	enc encrypter.Encrypter,
	store docstore.Store,
	in adminInput,
	now time.Time,
) (model.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	firstName := strings.TrimSpace(in.FirstName)
	lastName := strings.TrimSpace(in.LastName)
	userName := strings.TrimSpace(in.UserName)

	if util.IsEmail(email) != nil {
		return model.User{}, errInvalidEmail
	}
	if util.IsPassword(in.Password) != nil {
		return model.User{}, errWeakPassword
	}
	if util.IsName(firstName) != nil || util.IsName(lastName) != nil {
		return model.User{}, errInvalidName
	}
	if userName != "" && util.IsUsername(userName) != nil {
		return model.User{}, errInvalidUserName
	}

	hash, err := enc.HashPassword(in.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("hashing password: %w", err)
	}
	acc, err := accounts.CreateAccount(ctx, repository.CreateAccountOptions{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		return model.User{}, fmt.Errorf("creating account: %w", err)
	}

	u := model.User{
		ID:        acc.ID,
		Email:     acc.Email,
		FirstName: firstName,
		LastName:  lastName,
		UserName:  userName,
		CreatedAt: util.RecordTime(now),
	}
	if err := store.Set(ctx, model.CollectionUsers, u.ID, u.Fields()); err != nil {
		if delErr := accounts.DeleteAccount(ctx, acc.ID); delErr != nil {
			return model.User{}, fmt.Errorf("writing profile: %w (account %s left behind: %v)", err, acc.ID, delErr)
		}
		return model.User{}, fmt.Errorf("writing profile: %w", err)
	}
	return u, nil
}
