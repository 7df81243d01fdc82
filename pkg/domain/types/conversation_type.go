package types

import "fmt"

// ConversationType is the kind of a Slack conversation
type ConversationType string

const (
	ConversationTypePublicChannel  ConversationType = "public_channel"
	ConversationTypePrivateChannel ConversationType = "private_channel"
	ConversationTypeIM             ConversationType = "im"
	ConversationTypeMPIM           ConversationType = "mpim"
)

// AllConversationTypes returns all valid conversation types
func AllConversationTypes() []ConversationType {
	return []ConversationType{
		ConversationTypePublicChannel,
		ConversationTypePrivateChannel,
		ConversationTypeIM,
		ConversationTypeMPIM,
	}
}

// IsValid checks if the conversation type is valid
func (t ConversationType) IsValid() bool {
	switch t {
	case ConversationTypePublicChannel,
		ConversationTypePrivateChannel,
		ConversationTypeIM,
		ConversationTypeMPIM:
		return true
	default:
		return false
	}
}

// String returns the string representation of the conversation type
func (t ConversationType) String() string {
	return string(t)
}

// ClassifyConversation derives the conversation type from Slack's raw flags.
// Precedence is IM, then MPIM, then private, then public.
func ClassifyConversation(isIM, isMPIM, isPrivate bool) ConversationType {
	switch {
	case isIM:
		return ConversationTypeIM
	case isMPIM:
		return ConversationTypeMPIM
	case isPrivate:
		return ConversationTypePrivateChannel
	default:
		return ConversationTypePublicChannel
	}
}

// ParseConversationType parses a string into a ConversationType
func ParseConversationType(s string) (ConversationType, error) {
	t := ConversationType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid conversation type: %s", s)
	}
	return t, nil
}
