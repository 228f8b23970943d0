package stream

// defaultWrapper forwards all four stage hooks to the next pipe. Stages
// override individual hooks by appending their own options after these.
// Canceller forwarding is what lets a downstream Limit or FindFirst stop
// the source loop at the head of the chain.
func defaultWrapper(next *pipe) []Option {
	defaultConsumer := func(e any) {
		next.consumeOne(e)
	}
	defaultSettler := func(capacity int64, opts ...Option) {
		next.settler(capacity, opts...)
	}
	defaultCleaner := func() {
		next.cleaner()
	}
	defaultCanceller := func() bool {
		return next.canceller()
	}
	return []Option{
		wrapConsumer(defaultConsumer),
		wrapSettler(defaultSettler),
		wrapCleaner(defaultCleaner),
		wrapCanceller(defaultCanceller),
	}
}
