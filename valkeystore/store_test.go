package valkeystore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bjaus/pp"
	"github.com/bjaus/pp/valkeystore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valkey-io/valkey-go"
	"github.com/valkey-io/valkey-go/mock"
	"go.uber.org/mock/gomock"
)

var errConnReset = errors.New("connection reset")

func TestParseType(t *testing.T) {
	t.Parallel()
	tests := map[string]pp.KeyType{
		"none":   pp.TypeAbsent,
		"hash":   pp.TypeMapping,
		"list":   pp.TypeSequence,
		"set":    pp.TypeCollection,
		"string": pp.TypeUnsupported,
		"zset":   pp.TypeUnsupported,
		"stream": pp.TypeUnsupported,
	}
	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, want, valkeystore.ParseType(name))
		})
	}
}

func TestStoreType(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	client := mock.NewClient(ctrl)
	client.EXPECT().Do(gomock.Any(), mock.Match("TYPE", "user")).Return(mock.Result(mock.ValkeyString("hash")))
	client.EXPECT().Do(gomock.Any(), mock.Match("TYPE", "gone")).Return(mock.Result(mock.ValkeyString("none")))

	s := valkeystore.NewFromClient(client)
	got, err := s.Type(context.Background(), "user")
	require.NoError(t, err)
	assert.Equal(t, pp.TypeMapping, got)

	got, err = s.Type(context.Background(), "gone")
	require.NoError(t, err)
	assert.Equal(t, pp.TypeAbsent, got)
}

func TestStoreTypeError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	client := mock.NewClient(ctrl)
	client.EXPECT().Do(gomock.Any(), mock.Match("TYPE", "user")).Return(mock.ErrorResult(errConnReset))

	_, err := valkeystore.NewFromClient(client).Type(context.Background(), "user")
	assert.ErrorIs(t, err, errConnReset)
}

func TestStoreFetch(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		typ   pp.KeyType
		match []string
		reply []string
	}{
		"hash uses HGETALL": {
			typ:   pp.TypeMapping,
			match: []string{"HGETALL", "k"},
			reply: []string{"name", "alice", "age", "30"},
		},
		"list uses LRANGE over the whole list": {
			typ:   pp.TypeSequence,
			match: []string{"LRANGE", "k", "0", "-1"},
			reply: []string{"a", "b", "a"},
		},
		"set uses SMEMBERS": {
			typ:   pp.TypeCollection,
			match: []string{"SMEMBERS", "k"},
			reply: []string{"x", "y"},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			client := mock.NewClient(ctrl)
			values := make([]valkey.ValkeyMessage, len(tt.reply))
			for i, v := range tt.reply {
				values[i] = mock.ValkeyString(v)
			}
			client.EXPECT().Do(gomock.Any(), mock.Match(tt.match...)).Return(mock.Result(mock.ValkeyArray(values...)))

			got, err := valkeystore.NewFromClient(client).Fetch(context.Background(), "k", tt.typ)
			require.NoError(t, err)
			assert.Equal(t, pp.Reply{Items: tt.reply}, got)
		})
	}
}

func TestStoreFetchNil(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	client := mock.NewClient(ctrl)
	client.EXPECT().Do(gomock.Any(), mock.Match("SMEMBERS", "k")).Return(mock.Result(mock.ValkeyNil()))

	got, err := valkeystore.NewFromClient(client).Fetch(context.Background(), "k", pp.TypeCollection)
	require.NoError(t, err)
	assert.True(t, got.Nil)
}

func TestStoreFetchError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	client := mock.NewClient(ctrl)
	client.EXPECT().Do(gomock.Any(), mock.Match("HGETALL", "k")).Return(mock.ErrorResult(errConnReset))

	_, err := valkeystore.NewFromClient(client).Fetch(context.Background(), "k", pp.TypeMapping)
	assert.ErrorIs(t, err, errConnReset)
}

func TestStoreFetchUnsupportedType(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	client := mock.NewClient(ctrl)

	_, err := valkeystore.NewFromClient(client).Fetch(context.Background(), "k", pp.TypeUnsupported)
	assert.ErrorIs(t, err, pp.ErrWrongType)
}
