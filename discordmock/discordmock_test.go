package discordmock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trilobot/dbmaint/discordmock"
)

func TestNewInteractionDefaults(t *testing.T) {
	interaction := discordmock.NewInteraction()

	assert.Equal(t, discordmock.DefaultGuildID, interaction.Guild.ID)
	assert.Equal(t, "Test Server", interaction.Guild.Name)
	assert.Equal(t, discordmock.DefaultUserID, interaction.User.ID)
	assert.Equal(t, "Test User", interaction.User.Name)
	assert.Empty(t, interaction.Response.Messages)
	assert.Empty(t, interaction.Followup.Messages)
}

func TestRecorderRecordsMessages(t *testing.T) {
	interaction := discordmock.NewInteraction()

	_, ok := interaction.Response.Last()
	require.False(t, ok)

	interaction.Response.Send("pong")
	interaction.Followup.SendEphemeral("only you can see this")

	last, ok := interaction.Response.Last()
	require.True(t, ok)
	assert.Equal(t, "pong", last.Content)
	assert.False(t, last.Ephemeral)

	last, ok = interaction.Followup.Last()
	require.True(t, ok)
	assert.Equal(t, "only you can see this", last.Content)
	assert.True(t, last.Ephemeral)
}
