package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"

	echoapi "github.com/pkm-kampus/portal/apps/api/echo"
	"github.com/pkm-kampus/portal/core"
	"github.com/pkm-kampus/portal/core/attendance"
	"github.com/pkm-kampus/portal/core/session"
	"github.com/pkm-kampus/portal/core/student"
	"github.com/pkm-kampus/portal/core/task"
	"github.com/pkm-kampus/portal/core/user"
	logsvc "github.com/pkm-kampus/portal/services/logger"
	"github.com/pkm-kampus/portal/storage/database"
	inmemdb "github.com/pkm-kampus/portal/storage/database/inmem"
	sqlxrepos "github.com/pkm-kampus/portal/storage/database/sqlx"
)

type repositories struct {
	users      user.Repository
	students   student.Repository
	tasks      task.Repository
	attendance attendance.Repository
}

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	defer logger.Close()

	verifier := user.NewCredentialVerifier(conf.Auth.PasswordScheme, conf.Auth.BcryptCost)

	repos, closeDB, err := setUpRepositories(context.Background(), conf, verifier)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}
	defer func() {
		if err = closeDB(); err != nil {
			logger.Error("closing database", err)
		}
	}()

	sessions := session.NewMemoryStore(conf.Session.TTL)
	sweeper, err := session.StartSweeper(sessions, conf.Session.CleanupSpec, logger)
	if err != nil {
		logger.Fatal(fmt.Sprintf("starting session sweeper: %v", err), err)
	}
	defer sweeper.Stop()

	// =========================================================================
	// Start API Service

	logger.Info(fmt.Sprintf("Application initializing : version %q, database %q", conf.Build, conf.Database.Engine))
	defer logger.Info("Application stopped")

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	server := echoapi.NewServer(conf.Server.Address(), shutdown, &echoapi.Deps{
		Conf:          conf,
		Logger:        logger,
		Sessions:      sessions,
		UserSvc:       user.NewService(repos.users, verifier),
		StudentSvc:    student.NewService(repos.students),
		TaskSvc:       task.NewService(repos.tasks),
		AttendanceSvc: attendance.NewService(repos.attendance),
	})

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-serverErrors:
		if err != nil {
			logger.Error(fmt.Sprintf("server error: %v", err), err)
		}

	case sig := <-shutdown:
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		if err = server.Stop(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)
		}
	}
}

func setUpRepositories(ctx context.Context, conf *core.Config, verifier user.CredentialVerifier) (repositories, func() error, error) {
	if conf.Database.Engine == database.EngineMemory {
		db := inmemdb.Open()
		repos := repositories{
			users:      inmemdb.NewUserRepository(db),
			students:   inmemdb.NewStudentRepository(db),
			tasks:      inmemdb.NewTaskRepository(db),
			attendance: inmemdb.NewAttendanceRepository(db),
		}
		if err := seedDemoUsers(ctx, repos.users, verifier); err != nil {
			return repositories{}, nil, err
		}
		return repos, func() error { return nil }, nil
	}

	db, err := setUpDB(ctx, conf)
	if err != nil {
		return repositories{}, nil, err
	}
	repos := repositories{
		users:      sqlxrepos.NewUserRepository(db),
		students:   sqlxrepos.NewStudentRepository(db),
		tasks:      sqlxrepos.NewTaskRepository(db),
		attendance: sqlxrepos.NewAttendanceRepository(db),
	}
	return repos, db.Close, nil
}

func setUpDB(ctx context.Context, conf *core.Config) (*sqlx.DB, error) {
	db, err := database.Open(ctx, conf.Database)
	if err != nil {
		return nil, err
	}
	if err = database.Migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// seedDemoUsers gives the memory engine one account per role; each password equals the username.
func seedDemoUsers(ctx context.Context, repo user.Repository, verifier user.CredentialVerifier) error {
	for _, role := range user.AllRoles {
		pwd, err := verifier.Hash(role)
		if err != nil {
			return err
		}
		if _, err = repo.CreateUser(ctx, user.User{Username: role, Password: pwd, Role: role}); err != nil {
			return err
		}
	}
	return nil
}
