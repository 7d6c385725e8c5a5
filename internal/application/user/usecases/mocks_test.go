package usecases

import (
	"context"
	"time"

	"github.com/rawad-inc/rawad/internal/domain/profile"
	"github.com/rawad-inc/rawad/internal/domain/user"
	"github.com/rawad-inc/rawad/internal/shared/logger"
)

type mockUserRepository struct {
	SaveFunc           func(ctx context.Context, u *user.User) error
	UpdateFunc         func(ctx context.Context, u *user.User) error
	FindByIDFunc       func(ctx context.Context, id uint) (*user.User, error)
	FindByUsernameFunc func(ctx context.Context, username string) (*user.User, error)
	FindByEmailFunc    func(ctx context.Context, email string) (*user.User, error)
	DeleteFunc         func(ctx context.Context, id uint) error
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockSupporterRepository struct {
	SaveFunc         func(ctx context.Context, p *profile.SupporterProfile) error
	UpdateFunc       func(ctx context.Context, p *profile.SupporterProfile) error
	FindByIDFunc     func(ctx context.Context, id uint) (*profile.SupporterProfile, error)
	FindByUserIDFunc func(ctx context.Context, userID uint) (*profile.SupporterProfile, error)
	DeleteFunc       func(ctx context.Context, id uint) error
}

func (m *mockSupporterRepository) Save(ctx context.Context, p *profile.SupporterProfile) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockSupporterRepository) Update(ctx context.Context, p *profile.SupporterProfile) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockSupporterRepository) FindByID(ctx context.Context, id uint) (*profile.SupporterProfile, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSupporterRepository) FindByUserID(ctx context.Context, userID uint) (*profile.SupporterProfile, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockSupporterRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockJobSeekerRepository struct {
	SaveFunc func(ctx context.Context, p *profile.JobSeekerProfile) error
}

func (m *mockJobSeekerRepository) Save(ctx context.Context, p *profile.JobSeekerProfile) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockJobSeekerRepository) Update(ctx context.Context, p *profile.JobSeekerProfile) error {
	return nil
}

func (m *mockJobSeekerRepository) FindByID(ctx context.Context, id uint) (*profile.JobSeekerProfile, error) {
	return nil, nil
}

func (m *mockJobSeekerRepository) FindByUserID(ctx context.Context, userID uint) (*profile.JobSeekerProfile, error) {
	return nil, nil
}

func (m *mockJobSeekerRepository) Delete(ctx context.Context, id uint) error {
	return nil
}

func (m *mockJobSeekerRepository) ResetWeeklyApplications(ctx context.Context, cutoff time.Time) (int64, error) {
	return 0, nil
}

type mockCompanyRepository struct {
	SaveFunc                func(ctx context.Context, p *profile.CompanyProfile) error
	FindByLicenseNumberFunc func(ctx context.Context, licenseNumber string) (*profile.CompanyProfile, error)
}

func (m *mockCompanyRepository) Save(ctx context.Context, p *profile.CompanyProfile) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockCompanyRepository) Update(ctx context.Context, p *profile.CompanyProfile) error {
	return nil
}

func (m *mockCompanyRepository) FindByID(ctx context.Context, id uint) (*profile.CompanyProfile, error) {
	return nil, nil
}

func (m *mockCompanyRepository) FindByUserID(ctx context.Context, userID uint) (*profile.CompanyProfile, error) {
	return nil, nil
}

func (m *mockCompanyRepository) FindByLicenseNumber(ctx context.Context, licenseNumber string) (*profile.CompanyProfile, error) {
	if m.FindByLicenseNumberFunc != nil {
		return m.FindByLicenseNumberFunc(ctx, licenseNumber)
	}
	return nil, nil
}

func (m *mockCompanyRepository) Delete(ctx context.Context, id uint) error {
	return nil
}

type mockIndividualClientRepository struct {
	SaveFunc func(ctx context.Context, p *profile.IndividualClientProfile) error
}

func (m *mockIndividualClientRepository) Save(ctx context.Context, p *profile.IndividualClientProfile) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockIndividualClientRepository) Update(ctx context.Context, p *profile.IndividualClientProfile) error {
	return nil
}

func (m *mockIndividualClientRepository) FindByID(ctx context.Context, id uint) (*profile.IndividualClientProfile, error) {
	return nil, nil
}

func (m *mockIndividualClientRepository) FindByUserID(ctx context.Context, userID uint) (*profile.IndividualClientProfile, error) {
	return nil, nil
}

func (m *mockIndividualClientRepository) Delete(ctx context.Context, id uint) error {
	return nil
}

// inlineTxManager runs the function without a real transaction.
type inlineTxManager struct{}

func (inlineTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (n noopLogger) With(args ...any) logger.Interface             { return n }
func (n noopLogger) Named(name string) logger.Interface            { return n }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
