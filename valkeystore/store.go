// Package valkeystore implements pp.Store on top of a Valkey or Redis
// server.
package valkeystore

import (
	"context"
	"fmt"

	"github.com/bjaus/pp"

	"github.com/valkey-io/valkey-go"
)

// Options configures the server connection.
type Options struct {
	Address  string
	Username string
	Password string
	DB       int
}

// Store reads keys with TYPE, HGETALL, LRANGE and SMEMBERS.
type Store struct {
	client valkey.Client
}

var _ pp.Store = (*Store)(nil)

// New connects to the server described by opts. The connection speaks
// RESP2 so HGETALL replies arrive as flat field/value arrays in server
// order.
func New(opts Options) (*Store, error) {
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress:  []string{opts.Address},
		Username:     opts.Username,
		Password:     opts.Password,
		SelectDB:     opts.DB,
		AlwaysRESP2:  true,
		DisableCache: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", opts.Address, err)
	}
	return &Store{client: client}, nil
}

// NewFromClient wraps an existing client. The client should use RESP2 for
// HGETALL field order to be preserved.
func NewFromClient(client valkey.Client) *Store {
	return &Store{client: client}
}

// Close closes the underlying client.
func (s *Store) Close() { s.client.Close() }

// ParseType maps a TYPE reply to a [pp.KeyType].
func ParseType(name string) pp.KeyType {
	switch name {
	case "none":
		return pp.TypeAbsent
	case "hash":
		return pp.TypeMapping
	case "list":
		return pp.TypeSequence
	case "set":
		return pp.TypeCollection
	default:
		return pp.TypeUnsupported
	}
}

// Type implements [pp.Store].
func (s *Store) Type(ctx context.Context, key string) (pp.KeyType, error) {
	name, err := s.client.Do(ctx, s.client.B().Type().Key(key).Build()).ToString()
	if err != nil {
		return pp.TypeAbsent, err
	}
	return ParseType(name), nil
}

// Fetch implements [pp.Store].
func (s *Store) Fetch(ctx context.Context, key string, t pp.KeyType) (pp.Reply, error) {
	var resp valkey.ValkeyResult
	switch t {
	case pp.TypeMapping:
		resp = s.client.Do(ctx, s.client.B().Hgetall().Key(key).Build())
	case pp.TypeSequence:
		resp = s.client.Do(ctx, s.client.B().Lrange().Key(key).Start(0).Stop(-1).Build())
	case pp.TypeCollection:
		resp = s.client.Do(ctx, s.client.B().Smembers().Key(key).Build())
	default:
		return pp.Reply{}, fmt.Errorf("%w: cannot fetch %s", pp.ErrWrongType, t)
	}
	items, err := resp.AsStrSlice()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return pp.Reply{Nil: true}, nil
		}
		return pp.Reply{}, err
	}
	return pp.Reply{Items: items}, nil
}
