package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestInit_SetsLevel(t *testing.T) {
	Init("debug")
	require.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	Init("warn")
	require.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestInit_UnknownLevelFallsBackToInfo(t *testing.T) {
	Init("chatty")
	require.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
