package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"libris/internal/library/domain/entities"
	"libris/internal/library/domain/errs"
	"libris/internal/library/ports/repositories"
	"libris/pkg/logger"
	"libris/pkg/result"
)

// UserRepository реализует интерфейс repositories.UserRepository.
type UserRepository struct {
	pool PgxPoolInterface
}

// NewUserRepository создает новый репозиторий читателей.
func NewUserRepository(pool PgxPoolInterface) repositories.UserRepository {
	return &UserRepository{pool: pool}
}

// Create сохраняет нового читателя. Нарушение уникальности email
// превращается в доменную ошибку DUPLICATE_EMAIL.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) result.Result[*entities.User, *errs.Error] {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Create"))
	log.Debug(ctx, "creating user", zap.String("email", user.Email))

	query := `
        INSERT INTO users (name, address, email, phone, registered_at, loan_limit)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `

	created := *user
	err := r.pool.QueryRow(ctx, query,
		user.Name, user.Address, user.Email, user.Phone, user.RegisteredAt, user.LoanLimit,
	).Scan(&created.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			log.Debug(ctx, "duplicate email", zap.String("email", user.Email))
			return result.Err[*entities.User](errs.DuplicateEmail(user.Email))
		}
		log.Error(ctx, "failed to create user", zap.Error(err))
		return result.Err[*entities.User](errs.Validation("user", "failed to create user"))
	}

	log.Debug(ctx, "user created", zap.String("userID", created.ID))
	return result.Ok[*entities.User, *errs.Error](&created)
}

// FindByID находит читателя по идентификатору.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByID"))

	query := `
        SELECT id, name, address, email, phone, registered_at, loan_limit
        FROM users
        WHERE id = $1
    `

	var user entities.User
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Address,
		&user.Email,
		&user.Phone,
		&user.RegisteredAt,
		&user.LoanLimit,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.String("id", id))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "failed to find user", zap.Error(err))
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}

// FindByEmail находит читателя по email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByEmail"))

	query := `
        SELECT id, name, address, email, phone, registered_at, loan_limit
        FROM users
        WHERE email = $1
    `

	var user entities.User
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Address,
		&user.Email,
		&user.Phone,
		&user.RegisteredAt,
		&user.LoanLimit,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.String("email", email))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "failed to find user by email", zap.Error(err))
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	return &user, nil
}

// Update перезаписывает поля читателя.
func (r *UserRepository) Update(ctx context.Context, user *entities.User) result.Result[*entities.User, *errs.Error] {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Update"))
	log.Debug(ctx, "updating user", zap.String("userID", user.ID))

	query := `
        UPDATE users
        SET name = $1, address = $2, email = $3, phone = $4, loan_limit = $5
        WHERE id = $6
    `

	tag, err := r.pool.Exec(ctx, query,
		user.Name, user.Address, user.Email, user.Phone, user.LoanLimit, user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			log.Debug(ctx, "duplicate email", zap.String("email", user.Email))
			return result.Err[*entities.User](errs.DuplicateEmail(user.Email))
		}
		log.Error(ctx, "failed to update user", zap.Error(err))
		return result.Err[*entities.User](errs.Validation("user", "failed to update user"))
	}
	if tag.RowsAffected() == 0 {
		log.Debug(ctx, "user not found", zap.String("userID", user.ID))
		return result.Err[*entities.User](errs.UserNotFound(user.ID))
	}

	return result.Ok[*entities.User, *errs.Error](user)
}

// Delete удаляет читателя.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Delete"))
	log.Debug(ctx, "deleting user", zap.String("userID", id))

	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		log.Error(ctx, "failed to delete user", zap.Error(err))
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrUserNotFound
	}

	return nil
}

// Search ищет читателей по частичному совпадению имени или email.
func (r *UserRepository) Search(ctx context.Context, keyword string) ([]*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Search"))
	log.Debug(ctx, "searching users", zap.String("keyword", keyword))

	query := `
        SELECT id, name, address, email, phone, registered_at, loan_limit
        FROM users
        WHERE name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%'
        ORDER BY name
    `

	rows, err := r.pool.Query(ctx, query, keyword)
	if err != nil {
		log.Error(ctx, "failed to search users", zap.Error(err))
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	defer rows.Close()

	users := make([]*entities.User, 0)
	for rows.Next() {
		var user entities.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Address,
			&user.Email,
			&user.Phone,
			&user.RegisteredAt,
			&user.LoanLimit,
		); err != nil {
			log.Error(ctx, "failed to scan user", zap.Error(err))
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating users", zap.Error(err))
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}
