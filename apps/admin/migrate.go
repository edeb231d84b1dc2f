package main

import (
	"github.com/pressly/goose/v3"

	"github.com/pkm-kampus/portal/storage/database"
)

var gooseRunFunc = goose.Run // mockable

func (cli *commandLine) migrate(args []string) error {
	if cli.db == nil {
		return errNoDatabase
	}
	engine := cli.db.DriverName()
	if err := database.SetupGoose(engine); err != nil {
		return err
	}
	return gooseRunFunc(args[0], cli.db.DB, database.MigrationsDir(engine), args[1:]...)
}
