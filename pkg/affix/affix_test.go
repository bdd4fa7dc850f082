package affix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/textops/textops/pkg/affix"
)

func TestCommonPrefix(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  string
	}{
		{"shared_prefix", []string{"spam", "space"}, "spa"},
		{"no_shared_prefix", []string{"foo", "bar", "baz"}, ""},
		{"single_item", []string{"alone"}, "alone"},
		{"empty_sequence", nil, ""},
		{"empty_item_wins", []string{"abc", "", "abd"}, ""},
		{"identical_items", []string{"same", "same"}, "same"},
		{"one_is_prefix_of_other", []string{"door", "doors"}, "door"},
		{"order_independent", []string{"space", "spam"}, "spa"},
		{"multibyte_runes", []string{"héllo", "hélp"}, "hél"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, affix.CommonPrefix(tt.items))
		})
	}
}

func TestCommonSuffix(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  string
	}{
		{"shared_suffix", []string{"foobar", "babar"}, "bar"},
		{"room_suffix", []string{"broom", "groom"}, "room"},
		{"no_shared_suffix", []string{"abc", "xyz"}, ""},
		{"single_item", []string{"alone"}, "alone"},
		{"empty_sequence", nil, ""},
		{"empty_item_wins", []string{"abc", ""}, ""},
		{"one_is_suffix_of_other", []string{"sdoor", "door"}, "door"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, affix.CommonSuffix(tt.items))
		})
	}
}

func TestCommonPrefixStreamNarrowing(t *testing.T) {
	// The running prefix only ever shrinks; a later item cannot widen
	// the accumulated answer.
	items := []string{"interstate", "internal", "inter", "in"}
	assert.Equal(t, "in", affix.CommonPrefix(items))
}
