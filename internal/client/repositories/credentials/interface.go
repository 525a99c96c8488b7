// Package credentials persists the operator's bearer token in a local
// sqlite database. It is a plain key-value accessor; session semantics live
// one layer up.
package credentials

import "context"

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
