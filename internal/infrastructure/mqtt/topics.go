package mqtt

import "fmt"

// Topic prefixes for the punchline broker namespace.
const (
	// TopicPrefix is the base for all punchline topics.
	TopicPrefix = "punchline"

	// TopicPrefixEvents is the base for catalogue change events.
	TopicPrefixEvents = "punchline/events"

	// TopicPrefixSystem is the base for system topics.
	TopicPrefixSystem = "punchline/system"
)

// Topics provides builders for punchline MQTT topics.
// Using these helpers keeps topic naming consistent across the codebase.
type Topics struct{}

// SystemStatus returns the service online/offline status topic.
// Retained, so new subscribers immediately see the last known status.
//
// Example: punchline/system/status
func (Topics) SystemStatus() string {
	return TopicPrefixSystem + "/status"
}

// JokeCreated returns the topic for new joke events.
//
// Example: punchline/events/joke/created
func (Topics) JokeCreated() string {
	return TopicPrefixEvents + "/joke/created"
}

// JokeUpdated returns the topic for joke update events.
//
// Example: punchline/events/joke/updated
func (Topics) JokeUpdated() string {
	return TopicPrefixEvents + "/joke/updated"
}

// JokeDeleted returns the topic for joke deletion events.
//
// Example: punchline/events/joke/deleted
func (Topics) JokeDeleted() string {
	return TopicPrefixEvents + "/joke/deleted"
}

// JokeEvent returns the topic for an arbitrary joke event kind.
// Prefer the named builders above for the standard events.
func (Topics) JokeEvent(kind string) string {
	return fmt.Sprintf("%s/joke/%s", TopicPrefixEvents, kind)
}
