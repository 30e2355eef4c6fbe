// Package speech announces round results out loud.
package speech

import (
	"os"
	"path/filepath"
	"sync"

	htgotts "github.com/hegedustibor/htgo-tts"
	handlers "github.com/hegedustibor/htgo-tts/handlers"
	voices "github.com/hegedustibor/htgo-tts/voices"
	"github.com/rs/zerolog"
)

const (
	audioFolder = "audio"
	audioName   = "speech"
)

// Speaker uses MPlayer to speak messages when sound is turned on.
type Speaker struct {
	log   zerolog.Logger
	mu    sync.Mutex
	sound bool
	play  func(msg string) error
}

// New constructs a speaker.
func New(log zerolog.Logger, sound bool) *Speaker {
	return &Speaker{
		log:   log,
		sound: sound,
		play:  playMPlayer,
	}
}

// TurnSoundOnOff turns the sound for speaking on or off.
func (s *Speaker) TurnSoundOnOff() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sound = !s.sound
	return s.sound
}

// Speak speaks the message in the background. It returns false when sound is
// turned off and nothing will be played.
func (s *Speaker) Speak(msg string) bool {
	s.mu.Lock()
	sound := s.sound
	s.mu.Unlock()

	if !sound {
		return false
	}

	go func() {
		if err := s.play(msg); err != nil {
			s.log.Error().Err(err).Str("message", msg).Msg("speak")
		}
	}()

	return true
}

func playMPlayer(msg string) error {
	speech := htgotts.Speech{Folder: audioFolder, Language: voices.English, Handler: &handlers.MPlayer{}}

	path := filepath.Join(audioFolder, audioName+".mp3")
	os.Remove(path)
	defer os.Remove(path)

	fileName, err := speech.CreateSpeechFile(msg, audioName)
	if err != nil {
		return err
	}

	return speech.PlaySpeechFile(fileName)
}
