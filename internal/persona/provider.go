// =============================================================================
// Sales Data Generator - Person Data Provider
// =============================================================================
//
// Customers and sellers need realistic names and emails. This package puts
// that behind a small interface so the entity generators never depend on a
// concrete fake-data library:
//
//   Name()          - a person's display name
//   UniqueEmail()   - an email never returned before by this provider
//   CompanyEmail()  - a work email, duplicates allowed
//
// Two implementations ship here:
//   - Faker:      backed by gofakeit, seeded per run
//   - Sequential: deterministic stub for tests ("Persona 1", "persona1@...")
//
// =============================================================================

package persona

import (
	"errors"
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
)

// ErrEmailPoolExhausted is returned when no further unique email can be made.
var ErrEmailPoolExhausted = errors.New("unique email pool exhausted")

// Provider supplies person data for customers and sellers.
type Provider interface {
	Name() string
	UniqueEmail() (string, error)
	CompanyEmail() string
}

// =============================================================================
// GOFAKEIT PROVIDER
// =============================================================================

// DefaultMaxAttempts bounds how many candidates UniqueEmail tries per call.
const DefaultMaxAttempts = 1000

// Faker is a Provider backed by gofakeit.
type Faker struct {
	faker *gofakeit.Faker

	// seen holds every email handed out by UniqueEmail.
	seen map[string]struct{}

	// MaxAttempts is the number of collisions tolerated before giving up.
	MaxAttempts int
}

// NewFaker returns a provider whose output is fully determined by seed.
// A zero seed makes gofakeit pick a random one.
func NewFaker(seed uint64) *Faker {
	return &Faker{
		faker:       gofakeit.New(seed),
		seen:        make(map[string]struct{}),
		MaxAttempts: DefaultMaxAttempts,
	}
}

// Name returns a full person name.
func (f *Faker) Name() string {
	return f.faker.Name()
}

// UniqueEmail returns an email not previously returned by this provider.
func (f *Faker) UniqueEmail() (string, error) {
	for attempt := 0; attempt < f.MaxAttempts; attempt++ {
		email := strings.ToLower(f.faker.Email())
		if _, dup := f.seen[email]; dup {
			continue
		}
		f.seen[email] = struct{}{}
		return email, nil
	}
	return "", fmt.Errorf("%w after %d attempts (%d issued)", ErrEmailPoolExhausted, f.MaxAttempts, len(f.seen))
}

// CompanyEmail returns a work address of the form user@company-domain.
func (f *Faker) CompanyEmail() string {
	return strings.ToLower(f.faker.Username() + "@" + f.faker.DomainName())
}

// =============================================================================
// SEQUENTIAL STUB
// =============================================================================

// Sequential is a deterministic Provider. Each call advances a counter, so
// output depends only on call order.
type Sequential struct {
	names   int
	emails  int
	company int

	// Limit caps UniqueEmail; zero means unlimited.
	Limit int
}

// NewSequential returns a stub with no email limit.
func NewSequential() *Sequential {
	return &Sequential{}
}

// Name returns "Persona N".
func (s *Sequential) Name() string {
	s.names++
	return fmt.Sprintf("Persona %d", s.names)
}

// UniqueEmail returns "personaN@example.com" until Limit is reached.
func (s *Sequential) UniqueEmail() (string, error) {
	if s.Limit > 0 && s.emails >= s.Limit {
		return "", fmt.Errorf("%w: limit %d", ErrEmailPoolExhausted, s.Limit)
	}
	s.emails++
	return fmt.Sprintf("persona%d@example.com", s.emails), nil
}

// CompanyEmail returns "vendedorN@sodimac.example".
func (s *Sequential) CompanyEmail() string {
	s.company++
	return fmt.Sprintf("vendedor%d@sodimac.example", s.company)
}
