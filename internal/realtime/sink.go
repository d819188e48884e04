// Package realtime is the best-effort notification layer. Delivery carries
// no ordering, retry, or durability guarantee; clients must poll whenever
// the sink reports itself disabled.
package realtime

// Handler receives events published on a subscribed channel.
type Handler func(event string, data interface{})

type Sink interface {
	Publish(channel, event string, data interface{})
	Subscribe(channel string, fn Handler) (unsubscribe func())
	Enabled() bool
}

// SessionChannel names the channel carrying one session's events.
func SessionChannel(sessionID string) string {
	return "session:" + sessionID
}

// NoopSink is the disabled variant: publishes vanish, subscriptions are
// inert.
type NoopSink struct{}

func (NoopSink) Publish(channel, event string, data interface{}) {}

func (NoopSink) Subscribe(channel string, fn Handler) func() {
	return func() {}
}

func (NoopSink) Enabled() bool { return false }
