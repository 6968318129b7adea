package variant

// Option maps one option key of an axis to its class fragment.
type Option struct {
	Key     string `validate:"required,option_key"`
	Classes []string
}

// Axis is a named configuration dimension with a closed, ordered option set.
type Axis struct {
	ID      string   `validate:"required,axis_id"`
	Default string   `validate:"required"`
	Options []Option `validate:"min=1,dive"`
}

// Opt builds an Option from a whitespace separated class string.
func Opt(key, classes string) Option {
	return Option{Key: key, Classes: Fields(classes)}
}

// NewAxis builds an axis with the given default and options in declared order.
func NewAxis(id, defaultKey string, options ...Option) Axis {
	return Axis{ID: id, Default: defaultKey, Options: options}
}

// Keys returns the option keys in declared order.
func (a Axis) Keys() []string {
	keys := make([]string, 0, len(a.Options))
	for _, opt := range a.Options {
		keys = append(keys, opt.Key)
	}
	return keys
}

// Option looks up an option by key.
func (a Axis) Option(key string) (Option, bool) {
	for _, opt := range a.Options {
		if opt.Key == key {
			return opt, true
		}
	}
	return Option{}, false
}

// Next returns the option key following current, wrapping around.
// Unknown keys restart from the first option.
func (a Axis) Next(current string) string {
	return a.step(current, 1)
}

// Prev returns the option key preceding current, wrapping around.
func (a Axis) Prev(current string) string {
	return a.step(current, -1)
}

func (a Axis) step(current string, delta int) string {
	n := len(a.Options)
	if n == 0 {
		return ""
	}
	for i, opt := range a.Options {
		if opt.Key == current {
			return a.Options[((i+delta)%n+n)%n].Key
		}
	}
	return a.Options[0].Key
}

func cloneAxis(a Axis) Axis {
	out := Axis{ID: a.ID, Default: a.Default, Options: make([]Option, len(a.Options))}
	for i, opt := range a.Options {
		out.Options[i] = Option{Key: opt.Key, Classes: append([]string(nil), opt.Classes...)}
	}
	return out
}
