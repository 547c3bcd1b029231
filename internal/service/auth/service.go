package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/internal/infra/cache/otp"
	userRepo "github.com/m04kA/TurfBookingService/internal/infra/storage/user"
	"github.com/m04kA/TurfBookingService/internal/integrations/mailer"
	"github.com/m04kA/TurfBookingService/internal/integrations/smsgateway"
	"github.com/m04kA/TurfBookingService/internal/service/auth/models"
	"github.com/m04kA/TurfBookingService/pkg/password"
)

// Каналы сброса пароля
const (
	ChannelPhone = "phone"
	ChannelEmail = "email"
)

// Service сервис регистрации, входа и подтверждения контактов
type Service struct {
	userRepo UserRepository
	linker   GuestBookingLinker
	otpStore OTPStore
	tokens   TokenIssuer
	channels Channels
	logger   Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(
	userRepo UserRepository,
	linker GuestBookingLinker,
	otpStore OTPStore,
	tokens TokenIssuer,
	channels Channels,
	logger Logger,
) *Service {
	return &Service{
		userRepo: userRepo,
		linker:   linker,
		otpStore: otpStore,
		tokens:   tokens,
		channels: channels,
		logger:   logger,
	}
}

// SendRegisterOTP отправляет код для регистрации. Телефон не должен быть занят
func (s *Service) SendRegisterOTP(ctx context.Context, phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return fmt.Errorf("%w: phone number is required", ErrInvalidInput)
	}

	existing, err := s.findByPhone(ctx, phone)
	if err != nil {
		return err
	}
	if existing != nil {
		s.logger.Warn("SendRegisterOTP: phone %s already registered", phone)
		return ErrUserExists
	}

	return s.sendSMSCode(ctx, otp.PurposeRegister, phone)
}

// Register создает аккаунт после проверки кода из SMS.
// Прошлые гостевые брони с тем же телефоном привязываются к аккаунту
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	phone := strings.TrimSpace(req.Phone)
	name := strings.TrimSpace(req.Name)
	if phone == "" || req.OTP == "" {
		return nil, fmt.Errorf("%w: phone and OTP are required for registration", ErrInvalidInput)
	}
	if name == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: name and password are required", ErrInvalidInput)
	}

	// 1. Телефон и email свободны
	existing, err := s.findByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if existing == nil && req.Email != nil && strings.TrimSpace(*req.Email) != "" {
		existing, err = s.findByEmail(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
	}
	if existing != nil {
		s.logger.Warn("Register: phone %s or email already registered", phone)
		return nil, ErrUserExists
	}

	// 2. Проверка кода
	if err := s.verifyCode(ctx, otp.PurposeRegister, phone, req.OTP); err != nil {
		return nil, err
	}

	// 3. Создание аккаунта
	hash, err := password.Hash(req.Password)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	user, err := s.userRepo.Create(ctx, &domain.User{
		Name:         name,
		Phone:        phone,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		Status:       domain.UserActive,
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrDuplicateUser) {
			return nil, ErrUserExists
		}
		s.logger.Error("Register: failed to create user: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	// 4. Привязка гостевых броней не блокирует регистрацию
	linked, err := s.linker.LinkGuestBookings(ctx, phone, user.ID)
	if err != nil {
		s.logger.Warn("Register: failed to link guest bookings for user id=%d: %v", user.ID, err)
	} else if linked > 0 {
		s.logger.Info("Register: linked %d guest bookings to user id=%d", linked, user.ID)
	}

	s.logger.Info("Register: created user id=%d", user.ID)
	return s.issueToken(user)
}

// Login вход по телефону или email и паролю
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	var (
		user *domain.User
		err  error
	)
	if phone := strings.TrimSpace(req.Phone); phone != "" {
		user, err = s.findByPhone(ctx, phone)
	} else if strings.TrimSpace(req.Email) != "" {
		user, err = s.findByEmail(ctx, req.Email)
	} else {
		return nil, fmt.Errorf("%w: phone or email is required", ErrInvalidInput)
	}
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if user.IsBlocked() {
		s.logger.Warn("Login: blocked user id=%d tried to log in", user.ID)
		return nil, ErrAccountBlocked
	}
	if req.Role != "" && !user.HasRole(domain.Role(req.Role)) {
		s.logger.Warn("Login: user id=%d with role %s tried to log in as %s", user.ID, user.Role, req.Role)
		return nil, ErrRoleDenied
	}
	if err := password.Compare(user.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("Login: user id=%d logged in", user.ID)
	return s.issueToken(user)
}

// SendLoginOTP отправляет код для входа без пароля
func (s *Service) SendLoginOTP(ctx context.Context, phone string) error {
	user, err := s.activeUserByPhone(ctx, phone)
	if err != nil {
		return err
	}
	return s.sendSMSCode(ctx, otp.PurposeLogin, user.Phone)
}

// VerifyLoginOTP вход по коду из SMS
func (s *Service) VerifyLoginOTP(ctx context.Context, req *models.VerifyOTPRequest) (*models.AuthResponse, error) {
	user, err := s.activeUserByPhone(ctx, req.Phone)
	if err != nil {
		return nil, err
	}

	if err := s.verifyCode(ctx, otp.PurposeLogin, user.Phone, req.OTP); err != nil {
		return nil, err
	}

	s.logger.Info("VerifyLoginOTP: user id=%d logged in with OTP", user.ID)
	return s.issueToken(user)
}

// Me данные текущего пользователя
func (s *Service) Me(ctx context.Context, userID int64) (*models.UserResponse, error) {
	user, err := s.getByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainUser(user), nil
}

// SendEmailOTP отправляет код подтверждения на email из профиля
func (s *Service) SendEmailOTP(ctx context.Context, userID int64) error {
	user, err := s.getByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.Email == nil || *user.Email == "" {
		return ErrNoEmail
	}

	return s.sendEmailCode(ctx, otp.PurposeEmailVerify, user, mailer.PurposeVerification)
}

// VerifyEmailOTP отмечает email подтвержденным
func (s *Service) VerifyEmailOTP(ctx context.Context, userID int64, code string) error {
	user, err := s.getByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.Email == nil || *user.Email == "" {
		return ErrNoEmail
	}

	if err := s.verifyCode(ctx, otp.PurposeEmailVerify, emailSubject(*user.Email), code); err != nil {
		return err
	}

	if err := s.userRepo.SetEmailVerified(ctx, user.ID, *user.Email); err != nil {
		s.logger.Error("VerifyEmailOTP: failed to update user id=%d: %v", user.ID, err)
		return fmt.Errorf("%w: VerifyEmailOTP - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("VerifyEmailOTP: email verified for user id=%d", user.ID)
	return nil
}

// ForgotPasswordInitiate отправляет код сброса пароля.
// Идентификатор с "@" считается email и требует подтвержденного email
func (s *Service) ForgotPasswordInitiate(ctx context.Context, identifier string) (*models.ChannelResponse, error) {
	user, channel, err := s.findByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}

	if channel == ChannelEmail {
		if !user.IsEmailVerified {
			return nil, ErrEmailNotVerified
		}
		if err := s.sendEmailCode(ctx, otp.PurposePasswordReset, user, mailer.PurposePasswordReset); err != nil {
			return nil, err
		}
		return &models.ChannelResponse{Message: "OTP sent to your verified email", Channel: ChannelEmail}, nil
	}

	if err := s.sendSMSCode(ctx, otp.PurposePasswordReset, user.Phone); err != nil {
		return nil, err
	}
	return &models.ChannelResponse{Message: "OTP sent via SMS", Channel: ChannelPhone}, nil
}

// ForgotPasswordReset проверяет код и сохраняет новый пароль
func (s *Service) ForgotPasswordReset(ctx context.Context, req *models.ForgotPasswordResetRequest) error {
	if req.OTP == "" || req.NewPassword == "" {
		return fmt.Errorf("%w: missing required fields", ErrInvalidInput)
	}

	user, channel, err := s.findByIdentifier(ctx, req.Identifier)
	if err != nil {
		return err
	}

	subject := user.Phone
	if channel == ChannelEmail {
		subject = emailSubject(*user.Email)
	}
	if err := s.verifyCode(ctx, otp.PurposePasswordReset, subject, req.OTP); err != nil {
		return err
	}

	hash, err := password.Hash(req.NewPassword)
	if err != nil {
		s.logger.Error("ForgotPasswordReset: failed to hash password: %v", err)
		return fmt.Errorf("%w: ForgotPasswordReset - hash password: %v", ErrInternal, err)
	}
	if err := s.userRepo.UpdatePassword(ctx, user.ID, hash); err != nil {
		s.logger.Error("ForgotPasswordReset: failed to update user id=%d: %v", user.ID, err)
		return fmt.Errorf("%w: ForgotPasswordReset - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ForgotPasswordReset: password reset for user id=%d via %s", user.ID, channel)
	return nil
}

func (s *Service) issueToken(user *domain.User) (*models.AuthResponse, error) {
	token, exp, err := s.tokens.Issue(user.ID, string(user.Role))
	if err != nil {
		s.logger.Error("issueToken: failed to sign token for user id=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: issue token: %v", ErrInternal, err)
	}
	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: exp,
		User:      models.FromDomainUser(user),
	}, nil
}

func (s *Service) sendSMSCode(ctx context.Context, purpose otp.Purpose, phone string) error {
	if s.channels.SMS == nil {
		s.logger.Error("sendSMSCode: SMS channel is disabled, purpose=%s", purpose)
		return ErrOTPUnavailable
	}

	code, err := s.otpStore.Issue(ctx, purpose, phone)
	if err != nil {
		s.logger.Error("sendSMSCode: failed to issue code: %v", err)
		return fmt.Errorf("%w: issue code: %v", ErrInternal, err)
	}

	body := fmt.Sprintf("%s is your %s verification code. It expires in %d minutes.",
		code, s.turfName(), int(s.channels.OTPTTL.Minutes()))
	if err := s.channels.SMS.SendSMS(ctx, smsgateway.NormalizePhone(phone), body); err != nil {
		s.logger.Error("sendSMSCode: failed to send SMS, purpose=%s: %v", purpose, err)
		return fmt.Errorf("%w: %v", ErrOTPDelivery, err)
	}

	s.logger.Info("sendSMSCode: code sent, purpose=%s", purpose)
	return nil
}

func (s *Service) sendEmailCode(ctx context.Context, purpose otp.Purpose, user *domain.User, mailPurpose mailer.OTPPurpose) error {
	if s.channels.Mailer == nil {
		s.logger.Error("sendEmailCode: email channel is disabled, purpose=%s", purpose)
		return ErrOTPUnavailable
	}

	email := emailSubject(*user.Email)
	code, err := s.otpStore.Issue(ctx, purpose, email)
	if err != nil {
		s.logger.Error("sendEmailCode: failed to issue code: %v", err)
		return fmt.Errorf("%w: issue code: %v", ErrInternal, err)
	}

	if err := s.channels.Mailer.SendOTP(email, user.Name, code, mailPurpose); err != nil {
		s.logger.Error("sendEmailCode: failed to send email to user id=%d: %v", user.ID, err)
		return fmt.Errorf("%w: %v", ErrOTPDelivery, err)
	}

	s.logger.Info("sendEmailCode: code sent to user id=%d, purpose=%s", user.ID, purpose)
	return nil
}

// verifyCode ошибки кода (неверный, истекший, превышены попытки) возвращаются как есть
func (s *Service) verifyCode(ctx context.Context, purpose otp.Purpose, subject, code string) error {
	err := s.otpStore.Verify(ctx, purpose, subject, strings.TrimSpace(code))
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrValidation) {
		s.logger.Warn("verifyCode: rejected code, purpose=%s: %v", purpose, err)
		return err
	}
	s.logger.Error("verifyCode: storage error, purpose=%s: %v", purpose, err)
	return fmt.Errorf("%w: verify code: %v", ErrInternal, err)
}

func (s *Service) activeUserByPhone(ctx context.Context, phone string) (*domain.User, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	user, err := s.findByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.IsBlocked() {
		return nil, ErrAccountBlocked
	}
	return user, nil
}

func (s *Service) findByIdentifier(ctx context.Context, identifier string) (*domain.User, string, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, "", fmt.Errorf("%w: phone or email is required", ErrInvalidInput)
	}

	if strings.Contains(identifier, "@") {
		user, err := s.findByEmail(ctx, identifier)
		if err != nil {
			return nil, "", err
		}
		if user == nil {
			return nil, "", ErrUserNotFound
		}
		return user, ChannelEmail, nil
	}

	user, err := s.findByPhone(ctx, identifier)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrUserNotFound
	}
	return user, ChannelPhone, nil
}

// findByPhone возвращает nil без ошибки, если пользователя нет
func (s *Service) findByPhone(ctx context.Context, phone string) (*domain.User, error) {
	user, err := s.userRepo.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, nil
		}
		s.logger.Error("findByPhone: repository error: %v", err)
		return nil, fmt.Errorf("%w: find by phone: %v", ErrInternal, err)
	}
	return user, nil
}

func (s *Service) findByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, emailSubject(email))
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, nil
		}
		s.logger.Error("findByEmail: repository error: %v", err)
		return nil, fmt.Errorf("%w: find by email: %v", ErrInternal, err)
	}
	return user, nil
}

func (s *Service) getByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("getByID: failed to get user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: getByID - repository error: %v", ErrInternal, err)
	}
	return user, nil
}

func (s *Service) turfName() string {
	if s.channels.TurfName == "" {
		return "Turf"
	}
	return s.channels.TurfName
}

func emailSubject(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
