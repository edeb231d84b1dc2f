package main

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/pkm-kampus/portal/core/user"
)

// addUser creates a user, or updates the password and role of the first user with that username.
func (cli *commandLine) addUser(uname, pwd, role string) error {
	ctx := context.Background()
	nu := user.NewUser{Username: uname, Password: pwd, Role: role}
	if err := nu.Validate(cli.validate); err != nil {
		return err
	}

	usr, err := cli.usrSvc.GetByUsername(ctx, nu.Username)
	switch errors.Cause(err) {
	case nil:
		usr.Role = nu.Role
		if _, err = cli.usrSvc.SetPassword(ctx, usr, nu.Password); err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "user %q updated\n", usr.Username)
	case user.ErrNotFound:
		if usr, err = cli.usrSvc.Create(ctx, nu, cli.validate); err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "user %q created with id %d\n", usr.Username, usr.ID)
	default:
		return err
	}
	return nil
}
