// Package domain defines the text-to-speech pass-through ports
package domain

import (
	"context"
	"io"
	"time"
)

const (
	// DefaultURL is the TTS endpoint; query parameters are added per request
	DefaultURL = "https://translate.google.com/translate_tts"
	// DefaultText is spoken when the caller gives none
	DefaultText = "Esko on kova jätkä"
	// MaxText bounds the text length in characters
	MaxText = 200
)

// Config tunes the speech upstream
type Config struct {
	URL         string
	Lang        string
	DefaultText string
	Timeout     time.Duration
}

// Audio is an open upstream audio stream; the caller closes Body
type Audio struct {
	Body        io.ReadCloser
	ContentType string
}

// SpeakerPort turns text into audio
type SpeakerPort interface {
	Speak(ctx context.Context, text string) (*Audio, error)
}

// SpeakInput is the query input of the speak endpoint
type SpeakInput struct {
	Text string `query:"text" validate:"max=200"`
}
