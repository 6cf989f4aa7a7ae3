package scheduler

// HookFunc is the signature shared by every hook registered on a channel.
type HookFunc func(card *Card) error

const (
	ChannelBeforeRepetition = "before_repetition"
	ChannelAfterRepetition  = "after_repetition"
)

// HookRegistry holds named channels, each a sequence of callables fired in
// registration order. Registration is left to the host; the engine only
// fires channels it knows about.
type HookRegistry struct {
	channels map[string][]HookFunc
}

func NewHookRegistry() *HookRegistry {
	return &HookRegistry{channels: make(map[string][]HookFunc)}
}

// Register appends f to the named channel.
func (r *HookRegistry) Register(channel string, f HookFunc) {
	r.channels[channel] = append(r.channels[channel], f)
}

// Fire runs every callable registered on channel, in order, stopping at
// the first error.
func (r *HookRegistry) Fire(channel string, card *Card) error {
	for _, f := range r.channels[channel] {
		if err := f(card); err != nil {
			return err
		}
	}
	return nil
}
