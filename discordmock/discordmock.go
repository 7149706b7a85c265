// Package discordmock provides plain-data stand-ins for the Discord
// objects the bot's command handlers touch. They exist so command tests
// never need a Discord client: each type exposes exactly the fields the
// handlers read, and responses are recorded instead of sent.
package discordmock

const (
	DefaultGuildID = "123456789"
	DefaultUserID  = "987654321"
)

type Guild struct {
	ID   string
	Name string
}

type User struct {
	ID   string
	Name string
}

// Message is one recorded response or follow-up.
type Message struct {
	Content   string
	Ephemeral bool
}

// Recorder collects messages a handler tried to send.
type Recorder struct {
	Messages []Message
}

func (r *Recorder) Send(content string) {
	r.Messages = append(r.Messages, Message{Content: content})
}

func (r *Recorder) SendEphemeral(content string) {
	r.Messages = append(r.Messages, Message{Content: content, Ephemeral: true})
}

// Last returns the most recently recorded message, if any.
func (r *Recorder) Last() (Message, bool) {
	if len(r.Messages) == 0 {
		return Message{}, false
	}
	return r.Messages[len(r.Messages)-1], true
}

// Interaction mirrors a slash command invocation: the guild and user it
// came from plus recorders for the initial response and follow-ups.
type Interaction struct {
	Guild    *Guild
	User     *User
	Response *Recorder
	Followup *Recorder
}

func NewGuild() *Guild {
	return &Guild{ID: DefaultGuildID, Name: "Test Server"}
}

func NewUser() *User {
	return &User{ID: DefaultUserID, Name: "Test User"}
}

func NewInteraction() *Interaction {
	return &Interaction{
		Guild:    NewGuild(),
		User:     NewUser(),
		Response: &Recorder{},
		Followup: &Recorder{},
	}
}
