package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

type Repository struct{ conn *pgx.Conn }

func NewRepository(conn *pgx.Conn) *Repository {
	return &Repository{conn: conn}
}

func (r *Repository) GetUserByID(ctx context.Context, id string) (User, error) {
	sql := `
			SELECT id, email, name, role, "isActive", "isBanned"
			FROM quickcourt.app_user
			WHERE id=$1;
		`

	var u User
	err := r.conn.QueryRow(ctx, sql, id).Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.Role,
		&u.IsActive,
		&u.IsBanned,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUserNotFound
	}

	if err != nil {
		return User{}, fmt.Errorf("failed to fetch user with id %v: %w", id, err)
	}

	return u, nil
}

func (r *Repository) GetUserBySessionToken(ctx context.Context, token string) (User, error) {
	sql := `
			SELECT u.id, u.email, u.name, u.role, u."isActive", u."isBanned"
			FROM quickcourt.session s
			JOIN quickcourt.app_user u ON u.id = s."userId"
			WHERE s.token=$1 AND s."expiresAt" > $2;
		`

	var u User
	err := r.conn.QueryRow(ctx, sql, token, time.Now()).Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.Role,
		&u.IsActive,
		&u.IsBanned,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrSessionNotFound
	}

	if err != nil {
		return User{}, fmt.Errorf("failed to resolve session token: %w", err)
	}

	return u, nil
}

func (r *Repository) ListUsers(ctx context.Context) ([]User, error) {
	sql := `
			SELECT id, email, name, role, "isActive", "isBanned"
			FROM quickcourt.app_user
			ORDER BY email;
		`

	rows, err := r.conn.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	defer rows.Close()

	var users []User

	for rows.Next() {
		var u User
		err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.IsActive, &u.IsBanned)

		if err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}

		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}

func (r *Repository) UpdateUser(ctx context.Context, u User) error {
	sql := `
			UPDATE quickcourt.app_user
			SET
				email=$1,
				name=$2,
				role=$3,
				"isActive"=$4
			WHERE id=$5;
		`

	tag, err := r.conn.Exec(ctx, sql,
		u.Email,
		u.Name,
		u.Role,
		u.IsActive,
		u.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update user '%v': %w", u.ID, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *Repository) SetUserBanned(ctx context.Context, id string, banned bool) error {
	sql := `
			UPDATE quickcourt.app_user
			SET "isBanned"=$1
			WHERE id=$2;
		`

	tag, err := r.conn.Exec(ctx, sql, banned, id)

	if err != nil {
		return fmt.Errorf("failed to update user '%v' ban flag: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}
