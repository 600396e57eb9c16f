package pp_test

import (
	"testing"

	"github.com/bjaus/pp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		typ     pp.KeyType
		reply   pp.Reply
		want    pp.Shape
		wantErr error
	}{
		"mapping pairs in order": {
			typ:   pp.TypeMapping,
			reply: pp.Reply{Items: []string{"name", "alice", "age", "30"}},
			want: pp.Mapping{Entries: []pp.KeyValue{
				{Key: "name", Value: "alice"},
				{Key: "age", Value: "30"},
			}},
		},
		"mapping duplicate key keeps first position": {
			typ:   pp.TypeMapping,
			reply: pp.Reply{Items: []string{"a", "1", "b", "2", "a", "3"}},
			want: pp.Mapping{Entries: []pp.KeyValue{
				{Key: "a", Value: "3"},
				{Key: "b", Value: "2"},
			}},
		},
		"mapping odd length": {
			typ:     pp.TypeMapping,
			reply:   pp.Reply{Items: []string{"name", "alice", "age"}},
			wantErr: pp.ErrMalformedReply,
		},
		"empty mapping": {
			typ:   pp.TypeMapping,
			reply: pp.Reply{Items: []string{}},
			want:  pp.Mapping{Entries: []pp.KeyValue{}},
		},
		"sequence keeps duplicates": {
			typ:   pp.TypeSequence,
			reply: pp.Reply{Items: []string{"a", "b", "a"}},
			want:  pp.Sequence{Items: []string{"a", "b", "a"}},
		},
		"collection collapses duplicates": {
			typ:   pp.TypeCollection,
			reply: pp.Reply{Items: []string{"x", "y", "x"}},
			want:  pp.Collection{Items: []string{"x", "y"}},
		},
		"unsupported": {
			typ:     pp.TypeUnsupported,
			reply:   pp.Reply{Items: []string{"v"}},
			wantErr: pp.ErrWrongType,
		},
		"absent": {
			typ: pp.TypeAbsent,
		},
		"nil reply": {
			typ:   pp.TypeSequence,
			reply: pp.Reply{Nil: true},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := pp.Normalize(tt.typ, tt.reply)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeDoesNotAliasReply(t *testing.T) {
	t.Parallel()
	items := []string{"a", "b"}
	got, err := pp.Normalize(pp.TypeSequence, pp.Reply{Items: items})
	require.NoError(t, err)
	items[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, got.(pp.Sequence).Items)
}

func TestMappingKeysValues(t *testing.T) {
	t.Parallel()
	m := pp.Mapping{Entries: []pp.KeyValue{{Key: "k1", Value: "v1"}, {Key: "k2", Value: "v2"}}}
	assert.Equal(t, []string{"k1", "k2"}, m.Keys())
	assert.Equal(t, []string{"v1", "v2"}, m.Values())
}

func TestKeyTypeString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "hash", pp.TypeMapping.String())
	assert.Equal(t, "list", pp.TypeSequence.String())
	assert.Equal(t, "set", pp.TypeCollection.String())
	assert.Equal(t, "none", pp.TypeAbsent.String())
	assert.Equal(t, "unsupported", pp.TypeUnsupported.String())
}
