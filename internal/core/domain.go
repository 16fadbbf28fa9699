package core

import (
	"errors"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// DefaultCategory is assigned when an expense is added without one.
const DefaultCategory = "General"

const dateLayout = "2006-01-02"

var (
	ErrInvalidMonth     = errors.New("invalid month")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrEmptyDescription = errors.New("empty description")
	ErrExpenseNotFound  = errors.New("expense not found")
	ErrInvalidDate      = errors.New("invalid date")
)

type (
	// Month is a calendar month number, valid in 1-12.
	Month int

	// Date is a calendar day. It serializes as YYYY-MM-DD so that
	// lexicographic order of the stored form matches chronological order.
	Date struct {
		time.Time
	}

	Expense struct {
		ID          int64  `json:"id"`
		Date        Date   `json:"date"`
		Description string `json:"description"`
		Amount      Money  `json:"amount"`
		Category    string `json:"category"`
	}

	// Metadata carries the monotonic id counter and the monthly budgets,
	// keyed by the month number in string form ("1".."12").
	Metadata struct {
		LastID  int64            `json:"last_id"`
		Budgets map[string]Money `json:"budgets"`
	}

	// Document is the whole persisted state: every expense in insertion
	// order plus the metadata block.
	Document struct {
		Expenses []Expense `json:"expenses"`
		Metadata Metadata  `json:"metadata"`
	}
)

// ParseMonth parses a month number and validates the 1-12 range.
func ParseMonth(s string) (Month, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrInvalidMonth
	}
	m := Month(n)
	if err := m.Validate(); err != nil {
		return 0, err
	}
	return m, nil
}

func (m Month) Validate() error {
	if m < 1 || m > 12 {
		return ErrInvalidMonth
	}
	return nil
}

// Name returns the English month name, e.g. "June".
func (m Month) Name() string {
	return time.Month(m).String()
}

// Key returns the budgets map key for the month.
func (m Month) Key() string {
	return strconv.Itoa(int(m))
}

// NewDate creates a new Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// Today truncates the given instant to its calendar date.
func Today(now time.Time) Date {
	return NewDate(now.Year(), int(now.Month()), now.Day())
}

// ParseDate parses the stored YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

// Day returns the day of the month
func (d Date) Day() int {
	return d.Time.Day()
}

// Month returns the month
func (d Date) Month() Month {
	return Month(d.Time.Month())
}

// Year returns the year
func (d Date) Year() int {
	return d.Time.Year()
}

func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return ErrInvalidDate
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (e Expense) Validate() error {
	if e.ID < 1 {
		return errors.New("expense id must be positive")
	}
	if e.Date.IsZero() {
		return ErrInvalidDate
	}
	if len(strings.TrimSpace(e.Description)) == 0 {
		return ErrEmptyDescription
	}
	return e.Amount.Validate()
}

// NewDocument returns the default empty document used when no state has
// been persisted yet, or when the persisted state is unreadable.
func NewDocument() Document {
	return Document{
		Expenses: []Expense{},
		Metadata: Metadata{Budgets: map[string]Money{}},
	}
}

// Validate checks the document at the load boundary. A document that
// fails validation is treated as absent, never repaired.
func (d Document) Validate() error {
	if d.Metadata.LastID < 0 {
		return errors.New("negative id counter")
	}
	for _, e := range d.Expenses {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	for key, amount := range d.Metadata.Budgets {
		if _, err := strconv.Atoi(key); err != nil {
			return errors.New("non-numeric budget key: " + key)
		}
		if err := amount.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// NextID advances the id counter and returns the new id. Ids are never
// reused, even after deletions.
func (d *Document) NextID() int64 {
	d.Metadata.LastID++
	return d.Metadata.LastID
}

// BudgetFor looks up the budget configured for the given month.
func (d Document) BudgetFor(m Month) (Money, bool) {
	amount, ok := d.Metadata.Budgets[m.Key()]
	return amount, ok
}

// SetBudget stores or overwrites the budget for the given month.
func (d *Document) SetBudget(m Month, amount Money) {
	if d.Metadata.Budgets == nil {
		d.Metadata.Budgets = map[string]Money{}
	}
	d.Metadata.Budgets[m.Key()] = amount
}

// NormalizeCategory returns the canonical stored form of a category:
// first rune upper, remainder lower. An empty category becomes the
// default one.
func NormalizeCategory(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultCategory
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}

// SameCategory compares two categories ignoring case, so filters match
// regardless of how the value was typed or stored.
func SameCategory(a, b string) bool {
	return strings.EqualFold(a, b)
}
