package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/pkm-kampus/portal/core"
	"github.com/pkm-kampus/portal/core/user"
)

type userRow struct {
	ID       int    `db:"id"`
	Username string `db:"username"`
	Password string `db:"password"`
	Role     string `db:"role"`
}

func (r userRow) toUser() user.User {
	return user.User{ID: r.ID, Username: r.Username, Password: r.Password, Role: r.Role}
}

func toUsers(rows []userRow) []user.User {
	users := make([]user.User, 0, len(rows))
	for _, r := range rows {
		users = append(users, r.toUser())
	}
	return users
}

type userRepository struct {
	db core.DBExecutor
}

var _ user.Repository = (*userRepository)(nil)

func NewUserRepository(db core.DBExecutor) user.Repository {
	return &userRepository{db: db}
}

func (repo *userRepository) CreateUser(ctx context.Context, usr user.User) (user.User, error) {
	id, err := insert(ctx, repo.db,
		"INSERT INTO users (username, password, role) VALUES (?, ?, ?)",
		usr.Username, usr.Password, usr.Role,
	)
	if err != nil {
		return user.User{}, errors.Wrap(err, "inserting user")
	}
	usr.ID = int(id)
	return usr, nil
}

func (repo *userRepository) QueryAllUsers(ctx context.Context) ([]user.User, error) {
	var rows []userRow
	if err := repo.db.SelectContext(ctx, &rows, "SELECT id, username, password, role FROM users ORDER BY id"); err != nil {
		return nil, errors.Wrap(err, "selecting users")
	}
	return toUsers(rows), nil
}

func (repo *userRepository) GetUserByID(ctx context.Context, id int) (user.User, error) {
	var row userRow
	q := repo.db.Rebind("SELECT id, username, password, role FROM users WHERE id = ?")
	if err := repo.db.GetContext(ctx, &row, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, errors.Wrap(err, "selecting user")
	}
	return row.toUser(), nil
}

func (repo *userRepository) QueryUsersByUsername(ctx context.Context, username string) ([]user.User, error) {
	var rows []userRow
	q := repo.db.Rebind("SELECT id, username, password, role FROM users WHERE username = ? ORDER BY id")
	if err := repo.db.SelectContext(ctx, &rows, q, username); err != nil {
		return nil, errors.Wrap(err, "selecting users by username")
	}
	return toUsers(rows), nil
}

func (repo *userRepository) UpdateUser(ctx context.Context, usr user.User) (user.User, error) {
	err := exec(ctx, repo.db,
		"UPDATE users SET username = ?, password = ?, role = ? WHERE id = ?",
		usr.Username, usr.Password, usr.Role, usr.ID,
	)
	if err != nil {
		return user.User{}, errors.Wrap(err, "updating user")
	}
	return usr, nil
}
