package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/pkg/errors"

	"passwordSecurityDemo/internal/config"
	"passwordSecurityDemo/internal/core/domain"
	"passwordSecurityDemo/internal/pkg/validation"
	"passwordSecurityDemo/internal/utils/random"
)

type PasswordService struct {
	cfg    config.GeneratorConfig
	logger *slog.Logger
	wait   func(ctx context.Context, d time.Duration) error
}

func NewPasswordService(cfg config.GeneratorConfig, logger *slog.Logger) *PasswordService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &PasswordService{
		cfg:    cfg,
		logger: logger.With(slog.String("component", "generator")),
		wait:   sleep,
	}
}

// Charset joins the selected classes in the order lowercase, uppercase,
// digits, symbols.
func Charset(opts domain.GenerateOptions) string {
	var b strings.Builder
	if opts.IncludeLowercase {
		b.WriteString(domain.CharsetLower)
	}
	if opts.IncludeUppercase {
		b.WriteString(domain.CharsetUpper)
	}
	if opts.IncludeNumbers {
		b.WriteString(domain.CharsetDigits)
	}
	if opts.IncludeSymbols {
		b.WriteString(domain.CharsetSymbols)
	}
	return b.String()
}

// Generate returns a random password for opts after the configured delay.
// Invalid options fail at once; a cancelled ctx ends the delay early.
func (s *PasswordService) Generate(ctx context.Context, opts domain.GenerateOptions) (string, error) {
	charset := Charset(opts)
	if charset == "" {
		return "", domain.ErrNoCharacterClass
	}
	if err := validation.Struct(opts); err != nil {
		s.logger.Debug("rejected options", slog.Any("fields", validation.FieldErrors(err)))
		return "", errors.Wrap(domain.ErrInvalidLength, err.Error())
	}

	length := opts.Length
	if length == 0 {
		length = s.cfg.DefaultLength
	}
	if length < s.cfg.MinLength || (s.cfg.MaxLength > 0 && length > s.cfg.MaxLength) {
		return "", errors.Wrapf(domain.ErrInvalidLength, "length %d outside %d..%d", length, s.cfg.MinLength, s.cfg.MaxLength)
	}

	password, err := random.GenerateRandomString(charset, length)
	if err != nil {
		return "", err
	}

	if err := s.wait(ctx, s.cfg.Delay); err != nil {
		return "", err
	}
	s.logger.Debug("generated password", slog.Int("length", length), slog.Int("charset", len(charset)))
	return password, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
