package keeper

import (
	"encoding/binary"
)

var (
	// ConfigKey is the key for the write-once migration config
	ConfigKey = []byte{0x01}

	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x02}

	// ReplyIDCounterKey is the key for the last issued reply correlation id
	ReplyIDCounterKey = []byte{0x03}

	// ReplyHandlerKeyPrefix is the prefix for pending continuations by reply id
	ReplyHandlerKeyPrefix = []byte{0x04}

	// PairAddressKeyPrefix is the prefix for created pair addresses by exchange
	PairAddressKeyPrefix = []byte{0x05}

	// StatusKey is the key for the migration status
	StatusKey = []byte{0x06}
)

// ReplyHandlerKey returns the store key for the continuation of a reply id
func ReplyHandlerKey(replyID uint64) []byte {
	return append(append([]byte{}, ReplyHandlerKeyPrefix...), encodeUint64(replyID)...)
}

// PairAddressKey returns the store key for the pair address on an exchange
func PairAddressKey(exchange string) []byte {
	return append(append([]byte{}, PairAddressKeyPrefix...), []byte(exchange)...)
}

func encodeUint64(n uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, n)
	return bz
}

func decodeUint64(bz []byte) uint64 {
	if len(bz) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}
