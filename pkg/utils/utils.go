package utils

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	FormatIDR(amount float64) string
}

type utils struct {
	printer *message.Printer
}

func New() IUtils {
	return &utils{
		printer: message.NewPrinter(language.Indonesian),
	}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

// FormatIDR renders an amount as Indonesian rupiah with thousands grouping,
// e.g. 30000 -> "Rp 30.000".
func (u *utils) FormatIDR(amount float64) string {
	return u.printer.Sprintf("Rp %v", number.Decimal(amount, number.MaxFractionDigits(0)))
}
