package ticket

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jacobbrewer1/discordgo"
	"golang.org/x/time/rate"
)

// SessionPlatform is the Platform implementation backed by a discord
// session. Every REST call goes through a shared rate limiter so bursts
// of ticket activity do not trip the API limits.
type SessionPlatform struct {
	// s is the discord session.
	s *discordgo.Session

	// limiter paces the REST calls made through this platform.
	limiter *rate.Limiter
}

// NewSessionPlatform creates a Platform over the given discord session.
func NewSessionPlatform(s *discordgo.Session, limiter *rate.Limiter) *SessionPlatform {
	return &SessionPlatform{
		s:       s,
		limiter: limiter,
	}
}

func (p *SessionPlatform) wait(ctx context.Context) error {
	if err := p.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("error waiting for rate limiter: %w", err)
	}
	return nil
}

func (p *SessionPlatform) Category(ctx context.Context, guildID, categoryID string) (*discordgo.Channel, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}

	channel, err := p.s.Channel(categoryID)
	if err != nil {
		er := new(discordgo.RESTError)
		if errors.As(err, &er) && (er.Message.Code == discordgo.ErrCodeUnknownChannel || er.Message.Code == discordgo.ErrCodeGeneralError) { // General is thrown when a 404 is returned.
			return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, categoryID)
		}
		return nil, fmt.Errorf("error getting category: %w", err)
	}

	if channel.Type != discordgo.ChannelTypeGuildCategory || channel.GuildID != guildID {
		return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, categoryID)
	}

	return channel, nil
}

func (p *SessionPlatform) GuildChannels(ctx context.Context, guildID string) ([]*discordgo.Channel, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}

	channels, err := p.s.GuildChannels(guildID)
	if err != nil {
		return nil, fmt.Errorf("error listing guild channels: %w", err)
	}
	return channels, nil
}

func (p *SessionPlatform) CreateChannel(ctx context.Context, guildID string, data discordgo.GuildChannelCreateData) (*discordgo.Channel, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}

	channel, err := p.s.GuildChannelCreateComplex(guildID, data)
	if err != nil {
		return nil, fmt.Errorf("error creating channel: %w", err)
	}
	return channel, nil
}

func (p *SessionPlatform) RenameChannel(ctx context.Context, channelID, name string) error {
	if err := p.wait(ctx); err != nil {
		return err
	}

	if _, err := p.s.ChannelEditComplex(channelID, &discordgo.ChannelEdit{Name: name}); err != nil {
		return fmt.Errorf("error renaming channel: %w", err)
	}
	return nil
}

func (p *SessionPlatform) DeleteChannel(ctx context.Context, channelID string) error {
	if err := p.wait(ctx); err != nil {
		return err
	}

	if _, err := p.s.ChannelDelete(channelID); err != nil {
		return fmt.Errorf("error deleting channel: %w", err)
	}
	return nil
}

func (p *SessionPlatform) SendMessage(ctx context.Context, channelID string, msg *discordgo.MessageSend) (*discordgo.Message, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}

	sent, err := p.s.ChannelMessageSendComplex(channelID, msg)
	if err != nil {
		return nil, fmt.Errorf("error sending message: %w", err)
	}
	return sent, nil
}

func (p *SessionPlatform) SendDirectMessage(ctx context.Context, userID string, msg *discordgo.MessageSend) (*discordgo.Message, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}

	dm, err := p.s.UserChannelCreate(userID)
	if err != nil {
		return nil, fmt.Errorf("error creating DM channel: %w", err)
	}

	sent, err := p.s.ChannelMessageSendComplex(dm.ID, msg)
	if err != nil {
		return nil, fmt.Errorf("error sending DM: %w", err)
	}
	return sent, nil
}
