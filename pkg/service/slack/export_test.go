package slack

import (
	"context"

	"github.com/slack-go/slack"
)

type PostFunc func(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)

func (f PostFunc) PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
	return f(ctx, channelID, options...)
}

func NewWithPoster(p PostFunc, channelID string) *Service {
	return &Service{client: p, channelID: channelID}
}
