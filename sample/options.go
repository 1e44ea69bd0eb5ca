package sample

// Option configures Load.
type Option func(*options)

type options struct {
	families []Family
}

func defaultOptions() options {
	return options{families: DefaultFamilies()}
}

// WithFamilies replaces the fixed family set. Declaration order becomes
// the canonical order. Panics on an empty list or duplicates, which are
// programmer errors.
func WithFamilies(families ...Family) Option {
	if len(families) == 0 {
		panic("sample: WithFamilies: at least one family required")
	}
	seen := make(map[Family]struct{}, len(families))
	for _, f := range families {
		if _, dup := seen[f]; dup {
			panic("sample: WithFamilies: duplicate family " + string(f))
		}
		seen[f] = struct{}{}
	}
	cp := append([]Family(nil), families...)
	return func(o *options) { o.families = cp }
}
