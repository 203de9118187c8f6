package bot

// Config represents the configuration for the bot
type Config struct {
	// Only this chat may use the bot and receive reminders. 0 allows every chat.
	OwnerChatID int64
	// Long-polling timeout in seconds
	UpdateTimeout int
}

// DefaultConfig returns the default bot configuration
func DefaultConfig() Config {
	return Config{
		UpdateTimeout: 60,
	}
}
