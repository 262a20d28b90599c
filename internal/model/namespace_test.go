package model

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNamespaceValidation(t *testing.T) {
	_, err := NewNamespace(`App\Entity`)
	require.NoError(t, err)

	_, err = NewNamespace(`1Bad`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Contains(t, err.Error(), "1Bad")
}

func TestAddUseValidation(t *testing.T) {
	ns, err := NewNamespace("App")
	require.NoError(t, err)

	require.NoError(t, ns.AddUse(`Vendor\Pkg`, ""))
	assert.Equal(t, []string{"Pkg"}, ns.UseOrder())

	err = ns.AddUse(`Vendor\9Bad`, "")
	assert.True(t, errors.Is(err, ErrValidation))

	err = ns.AddUse(`Vendor\Other`, `Not\Bare`)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestUnresolve(t *testing.T) {
	ns, err := NewNamespace(`App\Entity`)
	require.NoError(t, err)
	require.NoError(t, ns.AddUse(`App\Support\Identifiable`, ""))
	require.NoError(t, ns.AddUse(`Vendor\Pkg`, "VP"))

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "exact use match", input: `App\Support\Identifiable`, expected: "Identifiable"},
		{name: "exact use match fully qualified", input: `\App\Support\Identifiable`, expected: "Identifiable"},
		{name: "use match is case insensitive", input: `app\support\identifiable`, expected: "Identifiable"},
		{name: "alias prefix match", input: `Vendor\Pkg\Cls`, expected: `VP\Cls`},
		{name: "current namespace stripped", input: `App\Entity\User`, expected: "User"},
		{name: "unknown name passes through", input: `Other\Thing`, expected: `Other\Thing`},
		{name: "unknown fully qualified loses separator", input: `\Other\Thing`, expected: `Other\Thing`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ns.Unresolve(tt.input))
		})
	}
}

func TestUnresolveGlobalNamespace(t *testing.T) {
	ns, err := NewNamespace("")
	require.NoError(t, err)
	assert.Equal(t, `App\User`, ns.Unresolve(`\App\User`))
}
