package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/internal/infra/cache/otp"
	userRepo "github.com/m04kA/TurfBookingService/internal/infra/storage/user"
	"github.com/m04kA/TurfBookingService/internal/integrations/mailer"
	"github.com/m04kA/TurfBookingService/internal/service/auth/models"
	"github.com/m04kA/TurfBookingService/pkg/password"
	"github.com/m04kA/TurfBookingService/pkg/ptr"
)

type fakeUsers struct {
	users  map[int64]*domain.User
	nextID int64
}

func (f *fakeUsers) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	for _, existing := range f.users {
		if existing.Phone == u.Phone {
			return nil, userRepo.ErrDuplicateUser
		}
	}
	f.nextID++
	u.ID = f.nextID
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, userRepo.ErrUserNotFound
}

func (f *fakeUsers) GetByPhone(_ context.Context, phone string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Phone == phone {
			return u, nil
		}
	}
	return nil, userRepo.ErrUserNotFound
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email != nil && strings.EqualFold(*u.Email, email) {
			return u, nil
		}
	}
	return nil, userRepo.ErrUserNotFound
}

func (f *fakeUsers) UpdatePassword(_ context.Context, id int64, hash string) error {
	f.users[id].PasswordHash = hash
	return nil
}

func (f *fakeUsers) SetEmailVerified(_ context.Context, id int64, email string) error {
	f.users[id].Email = &email
	f.users[id].IsEmailVerified = true
	return nil
}

type fakeLinker struct {
	phone  string
	userID int64
	err    error
}

func (f *fakeLinker) LinkGuestBookings(_ context.Context, phone string, userID int64) (int64, error) {
	f.phone, f.userID = phone, userID
	return 2, f.err
}

// fakeOTP выдает предсказуемый код и хранит его по назначению и субъекту
type fakeOTP struct {
	codes map[string]string
}

func (f *fakeOTP) Issue(_ context.Context, purpose otp.Purpose, subject string) (string, error) {
	f.codes[string(purpose)+":"+subject] = "123456"
	return "123456", nil
}

func (f *fakeOTP) Verify(_ context.Context, purpose otp.Purpose, subject, code string) error {
	key := string(purpose) + ":" + subject
	stored, ok := f.codes[key]
	if !ok {
		return otp.ErrCodeNotFound
	}
	if stored != code {
		return otp.ErrCodeMismatch
	}
	delete(f.codes, key)
	return nil
}

type fakeTokens struct{}

func (fakeTokens) Issue(userID int64, role string) (string, time.Time, error) {
	return role + "-token", time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC), nil
}

type recordingSMS struct {
	to   []string
	body []string
	err  error
}

func (r *recordingSMS) SendSMS(_ context.Context, to, body string) error {
	r.to = append(r.to, to)
	r.body = append(r.body, body)
	return r.err
}

type recordingMailer struct {
	to       []string
	purposes []mailer.OTPPurpose
}

func (r *recordingMailer) SendOTP(to, _, _ string, purpose mailer.OTPPurpose) error {
	r.to = append(r.to, to)
	r.purposes = append(r.purposes, purpose)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	svc    *Service
	users  *fakeUsers
	linker *fakeLinker
	otp    *fakeOTP
	sms    *recordingSMS
	mail   *recordingMailer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	hash, err := password.Hash("secret123")
	require.NoError(t, err)

	f := &fixture{
		users: &fakeUsers{users: map[int64]*domain.User{
			1: {ID: 1, Name: "Ravi", Phone: "9876543210", Email: ptr.Ptr("ravi@example.com"),
				PasswordHash: hash, Role: domain.RoleUser, Status: domain.UserActive, IsEmailVerified: true},
			2: {ID: 2, Name: "Boss", Phone: "9000000000", PasswordHash: hash,
				Role: domain.RoleAdmin, Status: domain.UserActive},
			3: {ID: 3, Name: "Blocked", Phone: "9111111111", PasswordHash: hash,
				Role: domain.RoleUser, Status: domain.UserBlocked},
		}, nextID: 3},
		linker: &fakeLinker{},
		otp:    &fakeOTP{codes: map[string]string{}},
		sms:    &recordingSMS{},
		mail:   &recordingMailer{},
	}
	f.svc = NewService(f.users, f.linker, f.otp, fakeTokens{}, Channels{
		SMS:      f.sms,
		Mailer:   f.mail,
		TurfName: "Dhaval Mart Turf",
		OTPTTL:   10 * time.Minute,
	}, nopLogger{})
	return f
}

func TestRegister_FullFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.SendRegisterOTP(ctx, "9222222222"))
	require.Len(t, f.sms.to, 1)
	assert.Equal(t, "+919222222222", f.sms.to[0])
	assert.Equal(t, "123456 is your Dhaval Mart Turf verification code. It expires in 10 minutes.", f.sms.body[0])

	resp, err := f.svc.Register(ctx, &models.RegisterRequest{
		Name:     "Asha",
		Phone:    "9222222222",
		Password: "pass1234",
		OTP:      "123456",
	})
	require.NoError(t, err)

	assert.Equal(t, "USER-token", resp.Token)
	assert.Equal(t, "Asha", resp.User.Name)
	assert.Equal(t, "9222222222", f.linker.phone)
	assert.Equal(t, resp.User.ID, f.linker.userID)
	assert.NoError(t, password.Compare(f.users.users[resp.User.ID].PasswordHash, "pass1234"))
}

func TestRegister_Rejections(t *testing.T) {
	t.Run("phone already registered", func(t *testing.T) {
		f := newFixture(t)
		err := f.svc.SendRegisterOTP(context.Background(), "9876543210")
		assert.ErrorIs(t, err, ErrUserExists)
		assert.Empty(t, f.sms.to)
	})

	t.Run("email already registered", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Register(context.Background(), &models.RegisterRequest{
			Name: "X", Phone: "9333333333", Email: ptr.Ptr("RAVI@example.com"), Password: "pass1234", OTP: "1",
		})
		assert.ErrorIs(t, err, ErrUserExists)
	})

	t.Run("wrong code", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.svc.SendRegisterOTP(context.Background(), "9333333333"))

		_, err := f.svc.Register(context.Background(), &models.RegisterRequest{
			Name: "X", Phone: "9333333333", Password: "pass1234", OTP: "000000",
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("linking failure does not block registration", func(t *testing.T) {
		f := newFixture(t)
		f.linker.err = errors.New("boom")
		require.NoError(t, f.svc.SendRegisterOTP(context.Background(), "9333333333"))

		_, err := f.svc.Register(context.Background(), &models.RegisterRequest{
			Name: "X", Phone: "9333333333", Password: "pass1234", OTP: "123456",
		})
		assert.NoError(t, err)
	})

	t.Run("sms disabled", func(t *testing.T) {
		f := newFixture(t)
		f.svc.channels.SMS = nil
		err := f.svc.SendRegisterOTP(context.Background(), "9333333333")
		assert.ErrorIs(t, err, ErrOTPUnavailable)
		assert.ErrorIs(t, err, domain.ErrExternalService)
	})
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name    string
		req     models.LoginRequest
		wantErr error
	}{
		{name: "by phone", req: models.LoginRequest{Phone: "9876543210", Password: "secret123"}},
		{name: "by email any case", req: models.LoginRequest{Email: "Ravi@Example.com", Password: "secret123"}},
		{name: "admin panel", req: models.LoginRequest{Phone: "9000000000", Password: "secret123", Role: "ADMIN"}},
		{name: "wrong password", req: models.LoginRequest{Phone: "9876543210", Password: "nope"}, wantErr: ErrInvalidCredentials},
		{name: "unknown user", req: models.LoginRequest{Phone: "9999999999", Password: "secret123"}, wantErr: ErrInvalidCredentials},
		{name: "blocked", req: models.LoginRequest{Phone: "9111111111", Password: "secret123"}, wantErr: ErrAccountBlocked},
		{name: "role mismatch", req: models.LoginRequest{Phone: "9876543210", Password: "secret123", Role: "ADMIN"}, wantErr: ErrRoleDenied},
		{name: "no identifier", req: models.LoginRequest{Password: "secret123"}, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			resp, err := f.svc.Login(context.Background(), &tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, resp.Token)
		})
	}
}

func TestLoginOTP(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.svc.SendLoginOTP(ctx, "9999999999"), ErrUserNotFound)
	assert.ErrorIs(t, f.svc.SendLoginOTP(ctx, "9111111111"), ErrAccountBlocked)

	require.NoError(t, f.svc.SendLoginOTP(ctx, "9876543210"))
	resp, err := f.svc.VerifyLoginOTP(ctx, &models.VerifyOTPRequest{Phone: "9876543210", OTP: "123456"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.User.ID)

	// код одноразовый
	_, err = f.svc.VerifyLoginOTP(ctx, &models.VerifyOTPRequest{Phone: "9876543210", OTP: "123456"})
	assert.ErrorIs(t, err, otp.ErrCodeNotFound)
}

func TestEmailVerification(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.users.users[1].IsEmailVerified = false

	require.NoError(t, f.svc.SendEmailOTP(ctx, 1))
	assert.Equal(t, []string{"ravi@example.com"}, f.mail.to)
	assert.Equal(t, []mailer.OTPPurpose{mailer.PurposeVerification}, f.mail.purposes)

	require.NoError(t, f.svc.VerifyEmailOTP(ctx, 1, "123456"))
	assert.True(t, f.users.users[1].IsEmailVerified)

	assert.ErrorIs(t, f.svc.SendEmailOTP(ctx, 2), ErrNoEmail)
}

func TestForgotPassword(t *testing.T) {
	t.Run("email channel", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		resp, err := f.svc.ForgotPasswordInitiate(ctx, "ravi@example.com")
		require.NoError(t, err)
		assert.Equal(t, ChannelEmail, resp.Channel)
		assert.Equal(t, []mailer.OTPPurpose{mailer.PurposePasswordReset}, f.mail.purposes)

		err = f.svc.ForgotPasswordReset(ctx, &models.ForgotPasswordResetRequest{
			Identifier: "ravi@example.com", OTP: "123456", NewPassword: "newpass1",
		})
		require.NoError(t, err)
		assert.NoError(t, password.Compare(f.users.users[1].PasswordHash, "newpass1"))
	})

	t.Run("phone channel", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		resp, err := f.svc.ForgotPasswordInitiate(ctx, "9876543210")
		require.NoError(t, err)
		assert.Equal(t, ChannelPhone, resp.Channel)
		require.Len(t, f.sms.to, 1)

		err = f.svc.ForgotPasswordReset(ctx, &models.ForgotPasswordResetRequest{
			Identifier: "9876543210", OTP: "654321", NewPassword: "newpass1",
		})
		assert.ErrorIs(t, err, otp.ErrCodeMismatch)
	})

	t.Run("unverified email", func(t *testing.T) {
		f := newFixture(t)
		f.users.users[1].IsEmailVerified = false

		_, err := f.svc.ForgotPasswordInitiate(context.Background(), "ravi@example.com")
		assert.ErrorIs(t, err, ErrEmailNotVerified)
		assert.Empty(t, f.mail.to)
	})

	t.Run("unknown identifier", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.ForgotPasswordInitiate(context.Background(), "nobody@example.com")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
