package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rawad-inc/rawad/internal/domain/mobile"
	"github.com/rawad-inc/rawad/internal/shared/logger"
)

type mockMobileRepository struct {
	SaveFunc                             func(ctx context.Context, m *mobile.MobileNumber) error
	UpdateFunc                           func(ctx context.Context, m *mobile.MobileNumber) error
	FindByIDFunc                         func(ctx context.Context, id uint) (*mobile.MobileNumber, error)
	FindByUserIDFunc                     func(ctx context.Context, userID uint) (*mobile.MobileNumber, error)
	FindByNumberFunc                     func(ctx context.Context, number string) (*mobile.MobileNumber, error)
	FindPendingWithCodeExpiredBeforeFunc func(ctx context.Context, cutoff time.Time, limit int) ([]*mobile.MobileNumber, error)
}

func (m *mockMobileRepository) Save(ctx context.Context, n *mobile.MobileNumber) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, n)
	}
	if err := n.PrepareSave(); err != nil {
		return err
	}
	n.MarkSaved()
	return nil
}

func (m *mockMobileRepository) Update(ctx context.Context, n *mobile.MobileNumber) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, n)
	}
	if err := n.PrepareSave(); err != nil {
		return err
	}
	n.MarkSaved()
	return nil
}

func (m *mockMobileRepository) FindByID(ctx context.Context, id uint) (*mobile.MobileNumber, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockMobileRepository) FindByUserID(ctx context.Context, userID uint) (*mobile.MobileNumber, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockMobileRepository) FindByNumber(ctx context.Context, number string) (*mobile.MobileNumber, error) {
	if m.FindByNumberFunc != nil {
		return m.FindByNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockMobileRepository) FindPendingWithCodeExpiredBefore(ctx context.Context, cutoff time.Time, limit int) ([]*mobile.MobileNumber, error) {
	if m.FindPendingWithCodeExpiredBeforeFunc != nil {
		return m.FindPendingWithCodeExpiredBeforeFunc(ctx, cutoff, limit)
	}
	return nil, nil
}

// stubParser accepts any "+" prefixed number of at least 8 digits.
type stubParser struct{}

func (stubParser) Normalize(raw string) (string, error) {
	cleaned := strings.ReplaceAll(strings.ReplaceAll(raw, " ", ""), "-", "")
	if !strings.HasPrefix(cleaned, "+") || len(cleaned) < 9 {
		return "", fmt.Errorf("invalid phone number: %s", raw)
	}
	return cleaned, nil
}

func (stubParser) Extract(e164 string) (mobile.PhoneInfo, bool) {
	return mobile.PhoneInfo{CountryCode: "+966", CountryISO: "SA", NumberType: "MOBILE"}, true
}

type mockCodeSender struct {
	SendCodeFunc func(ctx context.Context, number, code string) error
	Sent         []string
}

func (m *mockCodeSender) SendCode(ctx context.Context, number, code string) error {
	m.Sent = append(m.Sent, code)
	if m.SendCodeFunc != nil {
		return m.SendCodeFunc(ctx, number, code)
	}
	return nil
}

// syncDispatcher runs submitted tasks inline so tests can assert on their
// effects.
type syncDispatcher struct {
	Names []string
}

func (d *syncDispatcher) Submit(name string, fn func(ctx context.Context) error) {
	d.Names = append(d.Names, name)
	_ = fn(context.Background())
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
