package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/pkm-kampus/portal/core"
	"github.com/pkm-kampus/portal/core/task"
	"github.com/pkm-kampus/portal/core/user"
	logsvc "github.com/pkm-kampus/portal/services/logger"
	"github.com/pkm-kampus/portal/storage/database"
	inmemdb "github.com/pkm-kampus/portal/storage/database/inmem"
	sqlxrepos "github.com/pkm-kampus/portal/storage/database/sqlx"
)

func main() {
	conf := core.NewConfig()
	logger := logsvc.NewRollbarLogger(log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile), conf)
	logger.Enable(false)

	validate, translator := core.NewValidator()
	verifier := user.NewCredentialVerifier(conf.Auth.PasswordScheme, conf.Auth.BcryptCost)
	cli := commandLine{validate: validate, out: os.Stdout}

	// set up DB
	if conf.Database.Engine == database.EngineMemory {
		db := inmemdb.Open()
		cli.usrSvc = user.NewService(inmemdb.NewUserRepository(db), verifier)
		cli.taskSvc = task.NewService(inmemdb.NewTaskRepository(db))
	} else {
		db, err := database.Open(context.Background(), conf.Database)
		if err != nil {
			logger.Fatal(fmt.Sprintf("opening database: %v", err), err)
		}
		defer db.Close()
		cli.db = db
		cli.usrSvc = user.NewService(sqlxrepos.NewUserRepository(db), verifier)
		cli.taskSvc = task.NewService(sqlxrepos.NewTaskRepository(db))
	}

	// start CLI
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			if vErrs, ok := errors.Cause(err).(validator.ValidationErrors); ok {
				logger.Error("invalid input:\n" + joinFieldErrors(core.TranslateErrors(vErrs, translator)))
			} else {
				logger.Error(fmt.Sprintf("error: %v", err), err)
			}
		}
		os.Exit(1)
	}
}

func joinFieldErrors(fldErrs map[string]string) string {
	msgs := make([]string, 0, len(fldErrs))
	for _, msg := range fldErrs {
		msgs = append(msgs, "  "+msg)
	}
	sort.Strings(msgs)
	return strings.Join(msgs, "\n")
}
