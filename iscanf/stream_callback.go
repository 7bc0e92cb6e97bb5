package iscanf

// callbackSource adapts a caller-supplied (get, unget) pair to
// CharSource/Unreader, for the Fctscanf entry point. unget may be nil, in
// which case the final lookahead is silently discarded.
type callbackSource struct {
	get   func() int32
	unget func(int32)
}

func (c *callbackSource) NextChar() int32 { return c.get() }

func (c *callbackSource) UnreadChar(r int32) {
	if c.unget != nil {
		c.unget(r)
	}
}
