package persona

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakerUniqueEmails(t *testing.T) {
	f := NewFaker(42)
	seen := map[string]bool{}
	for i := 0; i < 1200; i++ {
		email, err := f.UniqueEmail()
		require.NoError(t, err)
		require.Contains(t, email, "@")
		require.False(t, seen[email], "duplicate email %s", email)
		seen[email] = true
	}
}

func TestFakerDeterministic(t *testing.T) {
	a, b := NewFaker(9), NewFaker(9)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Name(), b.Name())
		ea, err := a.UniqueEmail()
		require.NoError(t, err)
		eb, err := b.UniqueEmail()
		require.NoError(t, err)
		assert.Equal(t, ea, eb)
		assert.Equal(t, a.CompanyEmail(), b.CompanyEmail())
	}
}

func TestFakerCompanyEmail(t *testing.T) {
	f := NewFaker(3)
	email := f.CompanyEmail()
	parts := strings.Split(email, "@")
	require.Len(t, parts, 2)
	assert.NotEmpty(t, parts[0])
	assert.Contains(t, parts[1], ".")
	assert.Equal(t, strings.ToLower(email), email)
}

func TestFakerExhaustion(t *testing.T) {
	f := NewFaker(1)
	f.MaxAttempts = 0

	_, err := f.UniqueEmail()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmailPoolExhausted))
}

func TestSequential(t *testing.T) {
	s := NewSequential()
	assert.Equal(t, "Persona 1", s.Name())
	assert.Equal(t, "Persona 2", s.Name())

	e, err := s.UniqueEmail()
	require.NoError(t, err)
	assert.Equal(t, "persona1@example.com", e)
	assert.Equal(t, "vendedor1@sodimac.example", s.CompanyEmail())
}

func TestSequentialLimit(t *testing.T) {
	s := &Sequential{Limit: 2}
	for i := 0; i < 2; i++ {
		_, err := s.UniqueEmail()
		require.NoError(t, err)
	}
	_, err := s.UniqueEmail()
	assert.ErrorIs(t, err, ErrEmailPoolExhausted)
}

var _ Provider = (*Faker)(nil)
var _ Provider = (*Sequential)(nil)
