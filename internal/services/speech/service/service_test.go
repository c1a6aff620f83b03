package service

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"dashboard/internal/adapters/upstream"
	perr "dashboard/internal/platform/errors"
	"dashboard/internal/services/speech/domain"
)

func TestURL(t *testing.T) {
	s := New(domain.Config{}, upstream.NewClient(upstream.Options{}))
	u, err := url.Parse(s.URL("Hyvää huomenta"))
	if err != nil {
		t.Fatal(err)
	}
	if u.Host != "translate.google.com" || u.Path != "/translate_tts" {
		t.Fatalf("url = %s", u)
	}
	q := u.Query()
	if q.Get("q") != "Hyvää huomenta" || q.Get("tl") != "fi" || q.Get("ie") != "UTF-8" || q.Get("client") != "tw-ob" {
		t.Fatalf("query = %v", q)
	}

	s = New(domain.Config{URL: "http://tts.local/x?key=1", Lang: "sv"}, upstream.NewClient(upstream.Options{}))
	if got := s.URL("hej"); !strings.HasPrefix(got, "http://tts.local/x?key=1&") || !strings.Contains(got, "tl=sv") {
		t.Fatalf("url with existing query = %s", got)
	}
}

func TestSpeak_StreamsAudio(t *testing.T) {
	var gotQ, gotRef, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQ = r.URL.Query().Get("q")
		gotRef = r.Header.Get("Referer")
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("ID3-mp3-bytes"))
	}))
	defer srv.Close()

	s := New(domain.Config{URL: srv.URL}, upstream.NewClient(upstream.Options{MaxRetries: -1}))

	audio, err := s.Speak(context.Background(), "  ")
	if err != nil {
		t.Fatalf("Speak: %v", err)
	}
	defer audio.Body.Close()
	b, _ := io.ReadAll(audio.Body)
	if string(b) != "ID3-mp3-bytes" || audio.ContentType != "audio/mpeg" {
		t.Fatalf("audio = %q %q", b, audio.ContentType)
	}
	if gotQ != domain.DefaultText {
		t.Fatalf("blank text should use default, upstream got %q", gotQ)
	}
	if gotRef != "http://translate.google.com/" || gotUA != "Mozilla/5.0" {
		t.Fatalf("headers referer=%q ua=%q", gotRef, gotUA)
	}
}

func TestSpeak_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()
	s := New(domain.Config{URL: srv.URL}, upstream.NewClient(upstream.Options{MaxRetries: -1}))

	if _, err := s.Speak(context.Background(), strings.Repeat("ä", domain.MaxText+1)); !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("long text err = %v", err)
	}
	if _, err := s.Speak(context.Background(), strings.Repeat("ä", domain.MaxText)); !perr.IsCode(err, perr.ErrorCodeUpstream) {
		t.Fatalf("upstream 403 err = %v", err)
	}
}
