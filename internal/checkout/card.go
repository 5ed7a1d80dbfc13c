package checkout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CardType is a supported card network.
type CardType string

// Supported card networks.
const (
	CardUnknown    CardType = ""
	CardVisa       CardType = "visa"
	CardMastercard CardType = "mastercard"
)

// Validation errors. The messages are shown to the user as-is.
var (
	ErrInvalidCard   = errors.New("Invalid Card")        //nolint:staticcheck // User-facing message.
	ErrInvalidExpiry = errors.New("Invalid Expiry Date") //nolint:staticcheck // User-facing message.
	ErrCardExpired   = errors.New("Card Expired")        //nolint:staticcheck // User-facing message.
	ErrInvalidCVV    = errors.New("Invalid CVV")         //nolint:staticcheck // User-facing message.
	ErrMissingHolder = errors.New("Cardholder Name Required") //nolint:staticcheck // User-facing message.
)

const cvvLength = 3

// Card is the payment form.
type Card struct {
	Holder string
	Number string
	// Expiry is "MM/YY".
	Expiry string
	CVV    string
}

// Validate checks every field and returns all failures joined.
func (c Card) Validate(now time.Time) error {
	var errs []error
	if strings.TrimSpace(c.Holder) == "" {
		errs = append(errs, ErrMissingHolder)
	}
	if _, err := ValidateCardNumber(c.Number); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateExpiry(c.Expiry, now); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateCVV(c.CVV); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// NormalizeNumber strips spaces and dashes from a card number.
func NormalizeNumber(number string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(number))
}

// DetectCardType returns the network a card number belongs to, judged by
// prefix and length.
func DetectCardType(number string) CardType {
	n := NormalizeNumber(number)
	if !isDigits(n) {
		return CardUnknown
	}

	switch {
	case strings.HasPrefix(n, "4"):
		switch len(n) {
		case 13, 16, 19:
			return CardVisa
		}
	case len(n) == 16 && isMastercardPrefix(n):
		return CardMastercard
	}
	return CardUnknown
}

func isMastercardPrefix(n string) bool {
	two, _ := strconv.Atoi(n[:2])
	if two >= 51 && two <= 55 {
		return true
	}
	four, _ := strconv.Atoi(n[:4])
	return four >= 2221 && four <= 2720
}

// ValidateCardNumber checks the network and the Luhn checksum.
func ValidateCardNumber(number string) (CardType, error) {
	n := NormalizeNumber(number)
	t := DetectCardType(n)
	if t == CardUnknown {
		return CardUnknown, ErrInvalidCard
	}
	if !luhn(n) {
		return t, fmt.Errorf("%w: checksum mismatch", ErrInvalidCard)
	}
	return t, nil
}

// luhn reports whether a digit string passes the mod-10 checksum.
func luhn(digits string) bool {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// ParseExpiry parses "MM/YY" into the first instant after the card's last
// valid day, in UTC.
func ParseExpiry(expiry string) (time.Time, error) {
	month, year, ok := strings.Cut(strings.TrimSpace(expiry), "/")
	if !ok || len(month) != 2 || len(year) != 2 || !isDigits(month) || !isDigits(year) {
		return time.Time{}, ErrInvalidExpiry
	}
	m, _ := strconv.Atoi(month)
	y, _ := strconv.Atoi(year)
	if m < 1 || m > 12 {
		return time.Time{}, ErrInvalidExpiry
	}
	return time.Date(2000+y, time.Month(m)+1, 1, 0, 0, 0, 0, time.UTC), nil
}

// ValidateExpiry checks "MM/YY" and that the card is still valid at now.
// A card is valid through the last day of its expiry month.
func ValidateExpiry(expiry string, now time.Time) error {
	end, err := ParseExpiry(expiry)
	if err != nil {
		return err
	}
	if !now.UTC().Before(end) {
		return ErrCardExpired
	}
	return nil
}

// ValidateCVV checks the three-digit security code.
func ValidateCVV(cvv string) error {
	cvv = strings.TrimSpace(cvv)
	if len(cvv) != cvvLength || !isDigits(cvv) {
		return ErrInvalidCVV
	}
	return nil
}

// Mask hides all but the last four digits, e.g. "•••• 1111".
func Mask(number string) string {
	n := NormalizeNumber(number)
	if len(n) <= 4 {
		return n
	}
	return "•••• " + n[len(n)-4:]
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
