package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/incidentwatch/emergency_monitoring_system/internal/models"
)

// ErrInvalidCredentials возвращается и для неизвестного пользователя, и для
// неверного пароля — ответ не позволяет перечислять учётные записи.
var ErrInvalidCredentials = errors.New("invalid username or password")

// UserStore определяет контракт хранилища пользователей
type UserStore interface {
	FindUserByUsername(username string) (models.User, error)
	GetUser(id int) (models.User, error)
}

// AuthService определяет контракт аутентификации операторов
type AuthService interface {
	Login(ctx context.Context, username, password string) (models.User, error)
}

type authService struct {
	store  UserStore
	logger *logrus.Logger
}

func NewAuthService(store UserStore, logger *logrus.Logger) AuthService {
	return &authService{
		store:  store,
		logger: logger,
	}
}

// Login сверяет имя пользователя и пароль простым сравнением. Сессии и
// токены не выдаются: клиент сам хранит факт успешного входа.
func (s *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "auth",
		"method":   "Login",
		"username": username,
	})

	user, err := s.store.FindUserByUsername(username)
	if err != nil || user.Password != password {
		log.Warn("Login attempt failed")
		return models.User{}, ErrInvalidCredentials
	}

	log.Info("Login successful")
	return user, nil
}
