package help

import (
	"context"

	"github.com/rs/zerolog"
)

const (
	// FallbackLanguage is tried when the user's language has no help text.
	FallbackLanguage = "en_US"
	// NoHelp is returned when no help text can be found.
	NoHelp = "<p>There is no help for this route.</p>"

	languagePreference = "language"
)

// PreferenceReader reads a user preference. repository.PreferenceRepository
// satisfies it.
type PreferenceReader interface {
	Get(ctx context.Context, userID int64, name string) (string, bool, error)
}

type Service struct {
	provider        Provider
	preferences     PreferenceReader
	defaultLanguage string
	log             zerolog.Logger
}

func NewService(provider Provider, preferences PreferenceReader, defaultLanguage string, log zerolog.Logger) *Service {
	if defaultLanguage == "" {
		defaultLanguage = FallbackLanguage
	}
	return &Service{
		provider:        provider,
		preferences:     preferences,
		defaultLanguage: defaultLanguage,
		log:             log,
	}
}

// Show returns the help HTML for route in the user's language. It never
// fails: fetch problems degrade to English and then to NoHelp.
func (s *Service) Show(ctx context.Context, userID int64, route string) string {
	return s.Text(ctx, route, s.language(ctx, userID))
}

// Text resolves help for route in language: cache, remote, then the same
// for en_US, then NoHelp.
func (s *Service) Text(ctx context.Context, route, language string) string {
	if !s.provider.HasRoute(route) {
		s.log.Error().Str("route", route).Msg("[HELP] No such route")
		return NoHelp
	}

	if content, ok := s.cached(ctx, route, language); ok {
		return content
	}

	content := s.provider.FromRemote(ctx, route, language)
	if content == "" && language != FallbackLanguage {
		s.log.Info().Str("route", route).Str("language", language).Msg("[HELP] No help text, trying en_US")
		language = FallbackLanguage
		if cached, ok := s.cached(ctx, route, language); ok {
			return cached
		}
		content = s.provider.FromRemote(ctx, route, language)
	}

	if content != "" {
		s.provider.PutInCache(ctx, route, language, content)
		return content
	}
	return NoHelp
}

// Warm fetches and caches help for every route in every language that is
// not cached yet. It returns how many entries were fetched.
func (s *Service) Warm(ctx context.Context, routes, languages []string) int {
	fetched := 0
	for _, route := range routes {
		for _, language := range languages {
			if s.provider.InCache(ctx, route, language) {
				continue
			}
			if content := s.provider.FromRemote(ctx, route, language); content != "" {
				s.provider.PutInCache(ctx, route, language, content)
				fetched++
			}
		}
	}
	return fetched
}

func (s *Service) cached(ctx context.Context, route, language string) (string, bool) {
	if !s.provider.InCache(ctx, route, language) {
		return "", false
	}
	content, err := s.provider.FromCache(ctx, route, language)
	if err != nil {
		s.log.Warn().Err(err).Str("route", route).Msg("[HELP] Cached help text unreadable")
		return "", false
	}
	s.log.Debug().Str("route", route).Str("language", language).Msg("[HELP] Help text was in cache")
	return content, true
}

func (s *Service) language(ctx context.Context, userID int64) string {
	if s.preferences == nil || userID == 0 {
		return s.defaultLanguage
	}
	language, ok, err := s.preferences.Get(ctx, userID, languagePreference)
	if err != nil {
		s.log.Warn().Err(err).Int64("user_id", userID).Msg("[HELP] Language preference unavailable")
		return s.defaultLanguage
	}
	if !ok || language == "" {
		return s.defaultLanguage
	}
	return language
}
