// Package enrich consults the official data API, when a credential is
// configured, to fill authoritative fields the extraction engine
// intentionally never scrapes. The engine works identically without it.
package enrich

import (
	"context"
	"strconv"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/pverhoeven/tubelens/internal/tube"
)

// Service wraps the official API client. Every method returns a new entity
// value; inputs are never mutated, and any API failure degrades silently to
// the scraped value.
type Service struct {
	yt     *youtube.Service
	logger *zap.Logger
}

// New builds a Service with the given API key.
func New(ctx context.Context, apiKey string, logger *zap.Logger) (*Service, error) {
	yt, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, tube.NetworkError("create api client", err)
	}
	return &Service{yt: yt, logger: logger}, nil
}

// Video fills the authoritative view count.
func (s *Service) Video(ctx context.Context, in tube.Video) tube.Video {
	out := in
	resp, err := s.yt.Videos.List([]string{"statistics"}).Id(in.ID).Context(ctx).Do()
	if err != nil || len(resp.Items) == 0 {
		s.debug("video enrichment skipped", in.ID, err)
		return out
	}
	stats := resp.Items[0].Statistics
	if stats != nil && stats.ViewCount > 0 {
		out.ViewCount = humanize.Comma(int64(stats.ViewCount)) + " views"
	}
	return out
}

// Channel fills the authoritative subscriber and video counts.
func (s *Service) Channel(ctx context.Context, in tube.Channel) tube.Channel {
	out := in
	resp, err := s.yt.Channels.List([]string{"statistics"}).Id(in.ID).Context(ctx).Do()
	if err != nil || len(resp.Items) == 0 {
		s.debug("channel enrichment skipped", in.ID, err)
		return out
	}
	stats := resp.Items[0].Statistics
	if stats == nil {
		return out
	}
	if !stats.HiddenSubscriberCount && stats.SubscriberCount > 0 {
		out.Subscribers = humanize.Comma(int64(stats.SubscriberCount)) + " subscribers"
	}
	if stats.VideoCount > 0 {
		out.VideoCount = strconv.FormatUint(stats.VideoCount, 10)
	}
	return out
}

// Playlist fills the authoritative item total.
func (s *Service) Playlist(ctx context.Context, in tube.Playlist) tube.Playlist {
	out := in
	resp, err := s.yt.Playlists.List([]string{"contentDetails"}).Id(in.ID).Context(ctx).Do()
	if err != nil || len(resp.Items) == 0 {
		s.debug("playlist enrichment skipped", in.ID, err)
		return out
	}
	details := resp.Items[0].ContentDetails
	if details != nil && details.ItemCount > 0 {
		out.ItemCount = strconv.FormatInt(details.ItemCount, 10) + " videos"
	}
	return out
}

func (s *Service) debug(msg, id string, err error) {
	if s.logger == nil {
		return
	}
	s.logger.Debug(msg, zap.String("id", id), zap.Error(err))
}
