package theme

import "context"

// Static is a Source that never changes.
type Static Scheme

func (s Static) Current(context.Context) (Scheme, error) { return Scheme(s), nil }

// Watch blocks until ctx is done.
func (s Static) Watch(ctx context.Context, _ func(Scheme)) error {
	<-ctx.Done()
	return nil
}
