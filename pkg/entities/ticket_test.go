package entities

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTicketChannelName(t *testing.T) {
	require.Equal(t, "ticket-someuser", TicketChannelName("SomeUser"))
}

func TestUnpinnedName(t *testing.T) {
	tests := []struct {
		name    string
		channel string
		want    string
	}{
		{
			name:    "Unpinned",
			channel: "ticket-someuser",
			want:    "ticket-someuser",
		},
		{
			name:    "Pinned",
			channel: "📌ticket-someuser",
			want:    "ticket-someuser",
		},
		{
			name:    "StackedMarkers",
			channel: "📌📌📌ticket-someuser",
			want:    "ticket-someuser",
		},
		{
			name:    "NotATicket",
			channel: "general",
			want:    "general",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, UnpinnedName(tt.channel))
		})
	}
}

func TestPinnedNameIdempotent(t *testing.T) {
	name := PinnedName("ticket-someuser")
	require.Equal(t, "📌ticket-someuser", name)

	// Pinning an already pinned name never stacks markers.
	require.Equal(t, name, PinnedName(name))
}

func TestIsTicketChannel(t *testing.T) {
	tests := []struct {
		name    string
		channel string
		want    bool
	}{
		{
			name:    "Ticket",
			channel: "ticket-someuser",
			want:    true,
		},
		{
			name:    "PinnedTicket",
			channel: "📌ticket-someuser",
			want:    true,
		},
		{
			name:    "StackedMarkers",
			channel: "📌📌ticket-someuser",
			want:    true,
		},
		{
			name:    "NotATicket",
			channel: "general",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsTicketChannel(tt.channel))
		})
	}
}
