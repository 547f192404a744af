package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name   string
		hasher Hasher
		want   string
	}{
		{
			name:   "hash name wins",
			hasher: Hasher{RealName: "Mary Smith", HashName: "Just Mary"},
			want:   "Just Mary",
		},
		{
			name:   "real name backfills an empty hash name",
			hasher: Hasher{RealName: "Mary Smith"},
			want:   "Mary Smith",
		},
		{
			name:   "both empty stays empty",
			hasher: Hasher{},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.hasher.DisplayName())
		})
	}
}
