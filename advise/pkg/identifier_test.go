package pkg

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIdentifier(t *testing.T) {
	tests := []struct {
		input    string
		expected Identifier
		wantErr  require.ErrorAssertionFunc
	}{
		{
			input:    "Maven:org.apache.commons:commons-lang3:3.12.0",
			expected: Identifier{Type: "Maven", Namespace: "org.apache.commons", Name: "commons-lang3", Version: "3.12.0"},
		},
		{
			input:    "NPM::lodash:4.17.21",
			expected: Identifier{Type: "NPM", Name: "lodash", Version: "4.17.21"},
		},
		{
			input:    "Go:github.com/foo:bar:v1.0.0+incompatible:extra",
			expected: Identifier{Type: "Go", Namespace: "github.com/foo", Name: "bar", Version: "v1.0.0+incompatible:extra"},
		},
		{
			input:    "PyPI::requests",
			expected: Identifier{Type: "PyPI", Name: "requests"},
		},
		{
			input:   "   ",
			wantErr: require.Error,
		},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			if test.wantErr == nil {
				test.wantErr = require.NoError
			}
			actual, err := ParseIdentifier(test.input)
			test.wantErr(t, err)
			if err != nil {
				return
			}
			assert.Equal(t, test.expected, actual)
		})
	}
}

func TestIdentifier_StringRoundTrip(t *testing.T) {
	for _, s := range []string{
		"Maven:org.apache.commons:commons-lang3:3.12.0",
		"NPM:@nestjs:platform-express:6.2.3",
		"Gem::rails:7.0.0",
	} {
		id := MustParseIdentifier(s)
		assert.Equal(t, s, id.String())
	}
}

func TestIdentifier_Less(t *testing.T) {
	ids := []Identifier{
		MustParseIdentifier("NPM::b:1.0"),
		MustParseIdentifier("maven:g:a:2.0"),
		MustParseIdentifier("Maven:g:a:1.0"),
		MustParseIdentifier("NPM::a:1.0"),
	}

	SortIdentifiers(ids)

	assert.Equal(t, []string{"Maven:g:a:1.0", "maven:g:a:2.0", "NPM::a:1.0", "NPM::b:1.0"}, []string{
		ids[0].String(), ids[1].String(), ids[2].String(), ids[3].String(),
	})
}

func TestIdentifier_PackageURL(t *testing.T) {
	tests := []struct {
		id       Identifier
		expected string
	}{
		{
			id:       MustParseIdentifier("Maven:org.apache.commons:commons-lang3:3.12.0"),
			expected: "pkg:maven/org.apache.commons/commons-lang3@3.12.0",
		},
		{
			id:       MustParseIdentifier("Crate::serde:1.0.0"),
			expected: "pkg:cargo/serde@1.0.0",
		},
		{
			id:       Identifier{},
			expected: "",
		},
	}

	for _, test := range tests {
		t.Run(test.id.String(), func(t *testing.T) {
			assert.Equal(t, test.expected, test.id.PackageURL())
		})
	}
}

func TestIdentifier_JSONMapKey(t *testing.T) {
	in := map[Identifier]int{
		MustParseIdentifier("NPM::lodash:4.17.21"): 1,
	}

	by, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"NPM::lodash:4.17.21": 1}`, string(by))

	var out map[Identifier]int
	require.NoError(t, json.Unmarshal(by, &out))
	assert.Equal(t, in, out)
}
