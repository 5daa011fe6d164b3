package types

import (
	"context"
)

// WasmQuerier answers read-only smart queries against other contracts.
type WasmQuerier interface {
	QuerySmart(ctx context.Context, contractAddr string, req []byte) ([]byte, error)
}
