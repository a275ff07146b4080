package mock

import (
	"context"

	"github.com/globality-corp/deboiler"
)

var _ deboiler.SignatureStore = (*SignatureStore)(nil)

// SignatureStore is a mock implementation of deboiler.SignatureStore.
type SignatureStore struct {
	LoadFn func(ctx context.Context, domain string) (map[deboiler.Signature]struct{}, error)
	SaveFn func(ctx context.Context, domain string, sigs map[deboiler.Signature]struct{}) error
}

func (s *SignatureStore) Load(ctx context.Context, domain string) (map[deboiler.Signature]struct{}, error) {
	return s.LoadFn(ctx, domain)
}

func (s *SignatureStore) Save(ctx context.Context, domain string, sigs map[deboiler.Signature]struct{}) error {
	return s.SaveFn(ctx, domain, sigs)
}
