package gate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShouldRun(t *testing.T) {
	dev := HostEnv{Dev: true}
	prod := HostEnv{Prod: true}
	none := HostEnv{}

	tests := []struct {
		mode Mode
		env  HostEnv
		want bool
	}{
		{ModeOff, dev, false},
		{ModeOff, prod, false},
		{ModeOff, none, false},
		{ModeBoth, dev, true},
		{ModeBoth, prod, true},
		{ModeBoth, none, true},
		{ModeDev, dev, true},
		{ModeDev, prod, false},
		{ModeDev, none, false},
		{ModeProd, prod, true},
		{ModeProd, dev, false},
		{ModeProd, none, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode)+"/"+tt.env.String(), func(t *testing.T) {
			require.Equal(t, tt.want, ShouldRun(tt.mode, tt.env))
		})
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("")
	require.NoError(t, err)
	require.Equal(t, ModeBoth, m)

	m, err = ParseMode(" DEV ")
	require.NoError(t, err)
	require.Equal(t, ModeDev, m)

	_, err = ParseMode("staging")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnknownMode))
}

func TestParseHostEnv(t *testing.T) {
	env, err := ParseHostEnv("")
	require.NoError(t, err)
	require.Equal(t, HostEnv{Prod: true}, env)

	env, err = ParseHostEnv("development")
	require.NoError(t, err)
	require.Equal(t, HostEnv{Dev: true}, env)

	_, err = ParseHostEnv("qa")
	require.Error(t, err)
}
