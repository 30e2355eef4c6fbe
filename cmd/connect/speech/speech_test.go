package speech

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func Test_Speak(t *testing.T) {
	played := make(chan string, 1)

	s := New(zerolog.Nop(), false)
	s.play = func(msg string) error {
		played <- msg
		return nil
	}

	require.False(t, s.Speak("silent"))

	require.True(t, s.TurnSoundOnOff())
	require.True(t, s.Speak("Player 1 wins!!"))
	require.Equal(t, "Player 1 wins!!", <-played)

	require.False(t, s.TurnSoundOnOff())
	require.False(t, s.Speak("silent"))
}

func Test_SpeakError(t *testing.T) {
	done := make(chan struct{})

	s := New(zerolog.Nop(), true)
	s.play = func(msg string) error {
		defer close(done)
		return errors.New("no mplayer")
	}

	require.True(t, s.Speak("hello"))
	<-done
}
