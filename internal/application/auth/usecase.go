package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/laborconnect/laborconnect-api/internal/application/dto"
	"github.com/laborconnect/laborconnect-api/internal/domain"
	"github.com/laborconnect/laborconnect-api/internal/domain/entity"
	"github.com/laborconnect/laborconnect-api/internal/domain/repository"
	"github.com/laborconnect/laborconnect-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
// El registro crea el usuario y su perfil según el rol en una sola operación.
type AuthUseCase struct {
	userRepo     repository.UserRepository
	workerRepo   repository.WorkerProfileRepository
	employerRepo repository.EmployerProfileRepository
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	workerRepo repository.WorkerProfileRepository,
	employerRepo repository.EmployerProfileRepository,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		workerRepo:   workerRepo,
		employerRepo: employerRepo,
		jwtCfg:       jwtCfg,
	}
}

// Register crea un usuario: hashea password con bcrypt, persiste y crea el perfil
// del rol. Devuelve ErrEmailAlreadyExists si el email ya existe (match exacto).
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Role != entity.RoleWorker && in.Role != entity.RoleEmployer {
		return nil, domain.ErrInvalidRole
	}
	// Campos de perfil validados antes de cualquier insert para no dejar
	// un usuario a medio registrar si el perfil falla.
	switch in.Role {
	case entity.RoleWorker:
		if in.Skills == "" || in.Experience == "" || in.Location == "" {
			return nil, domain.ErrInvalidInput
		}
	case entity.RoleEmployer:
		if in.CompanyName == "" || in.Industry == "" {
			return nil, domain.ErrInvalidInput
		}
	}

	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         in.Role,
		Phone:        in.Phone,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}

	switch in.Role {
	case entity.RoleWorker:
		availability := in.Availability
		if availability == "" {
			availability = entity.DefaultAvailability
		}
		profile := &entity.WorkerProfile{
			ID:           uuid.New().String(),
			UserID:       user.ID,
			Skills:       in.Skills,
			Experience:   in.Experience,
			Location:     in.Location,
			Availability: availability,
		}
		if err := uc.workerRepo.Create(profile); err != nil {
			return nil, err
		}
	case entity.RoleEmployer:
		profile := &entity.EmployerProfile{
			ID:          uuid.New().String(),
			UserID:      user.ID,
			CompanyName: in.CompanyName,
			Industry:    in.Industry,
			JobNeeds:    in.JobNeeds,
			Location:    in.Location,
		}
		if err := uc.employerRepo.Create(profile); err != nil {
			return nil, err
		}
	}

	return toUserResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Credenciales incorrectas y usuario inexistente devuelven el mismo error.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.FullName(), user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// GetUser devuelve el usuario autenticado (para /api/auth/me).
func (uc *AuthUseCase) GetUser(id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}
