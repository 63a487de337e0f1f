package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/abhay963/Nagar-Sahayata-Portal/internal/entity"
)

const userColumns = `id, name, email, password_hash, role, department, contact, emp_id, address,
	profile_image, joining_date, created_at, updated_at`

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, user entity.User) error {
	q := `
	INSERT INTO users (
		id, name, email, password_hash, role, department, contact, emp_id, address,
		profile_image, joining_date, created_at, updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(
		ctx, q,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role, user.Department,
		user.Contact, user.EmpID, user.Address, user.ProfileImage,
		user.JoiningDate, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return mapUserConflict(err)
	}

	return nil
}

func (r *UserRepository) UserByID(ctx context.Context, id uuid.UUID) (entity.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	return r.queryUser(ctx, q, id)
}

func (r *UserRepository) UserByEmail(ctx context.Context, email string) (entity.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	return r.queryUser(ctx, q, email)
}

func (r *UserRepository) UserByEmpID(ctx context.Context, empID string) (entity.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE emp_id = $1`

	return r.queryUser(ctx, q, empID)
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	q := `UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`

	result, err := r.db.Exec(ctx, q, passwordHash, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrUserNotFound
	}

	return nil
}

// UpdateProfile overwrites the editable profile fields; joining date is left untouched.
func (r *UserRepository) UpdateProfile(ctx context.Context, user entity.User) (entity.User, error) {
	q := `
	UPDATE users
	SET name = $1, email = $2, emp_id = $3, department = $4, contact = $5, address = $6,
		profile_image = $7, updated_at = NOW()
	WHERE id = $8
	RETURNING ` + userColumns

	updated, err := r.queryUser(
		ctx, q,
		user.Name, user.Email, user.EmpID, user.Department, user.Contact, user.Address,
		user.ProfileImage, user.ID,
	)
	if err != nil {
		return entity.User{}, mapUserConflict(err)
	}

	return updated, nil
}

func (r *UserRepository) StaffByRoleAndDepartment(
	ctx context.Context,
	role entity.Role,
	department string,
) ([]entity.StaffMember, error) {
	q := `SELECT id, name, role FROM users WHERE role = $1 AND department = $2 ORDER BY name`

	rows, err := r.db.Query(ctx, q, role, department)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	staff := make([]entity.StaffMember, 0)

	for rows.Next() {
		var m entity.StaffMember

		err = rows.Scan(&m.ID, &m.Name, &m.Role)
		if err != nil {
			return nil, err
		}

		staff = append(staff, m)
	}

	return staff, rows.Err()
}

func (r *UserRepository) queryUser(ctx context.Context, q string, args ...any) (entity.User, error) {
	var u entity.User

	err := r.db.QueryRow(ctx, q, args...).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Department, &u.Contact, &u.EmpID,
		&u.Address, &u.ProfileImage, &u.JoiningDate, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, entity.ErrUserNotFound
		}

		return entity.User{}, err
	}

	return u, nil
}

func mapUserConflict(err error) error {
	constraint, ok := uniqueConstraint(err)
	if !ok {
		return err
	}

	switch constraint {
	case "users_email_key":
		return entity.ErrEmailTaken
	case "users_emp_id_key":
		return entity.ErrEmpIDTaken
	default:
		return fmt.Errorf("unique violation on %s: %w", constraint, err)
	}
}
