package paginator

import "context"

// PreviousPage moves one page back. At the first page this is a no-op.
func (s *Session) PreviousPage(ctx context.Context) error {
	return s.ShowPage(ctx, s.Cursor()-1)
}

// NextPage moves one page forward. At the last page this is a no-op.
func (s *Session) NextPage(ctx context.Context) error {
	return s.ShowPage(ctx, s.Cursor()+1)
}

// FirstPage jumps to the first page.
func (s *Session) FirstPage(ctx context.Context) error {
	return s.ShowPage(ctx, 0)
}

// LastPage jumps to the last page.
func (s *Session) LastPage(ctx context.Context) error {
	return s.ShowPage(ctx, s.PageCount()-1)
}
