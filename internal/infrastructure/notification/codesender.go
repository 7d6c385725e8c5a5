// Package notification delivers verification codes to users.
package notification

import (
	"context"

	"github.com/rawad-inc/rawad/internal/shared/logger"
)

// LogCodeSender writes verification codes to the log instead of sending
// them. It stands in until an SMS gateway is integrated; the application
// layer only depends on the CodeSender interface so swapping it in is a
// wiring change.
type LogCodeSender struct {
	logger logger.Interface
}

func NewLogCodeSender(log logger.Interface) *LogCodeSender {
	return &LogCodeSender{logger: log}
}

func (s *LogCodeSender) SendCode(ctx context.Context, number, code string) error {
	s.logger.Infow("verification code issued",
		"number", number,
		"code", code,
	)
	return nil
}
