// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/papermv/pkg/types"
)

var fixtureWords = []string{
	"theory", "objects", "of", "a", "A", "system",
	"John", "Mitchell", "Turing",
	"Boolean", "boolean", "Rosetta", "Lr",
	"Parser", "Smith", "smith",
}

func TestFromWords(t *testing.T) {
	lex := FromWords(fixtureWords, Options{})

	tests := []struct {
		name string
		fn   func(string) bool
		word string
		want bool
	}{
		{"lowercase word is English", lex.IsEnglish, "theory", true},
		{"domain term is English", lex.IsEnglish, "subtyping", true},
		{"capitalized entry is not English", lex.IsEnglish, "John", false},
		{"name is proper", lex.IsProperName, "John", true},
		{"name is proper", lex.IsProperName, "Turing", true},
		{"name with English lowercase form is not proper", lex.IsProperName, "Smith", false},
		{"single letter with English form is not proper", lex.IsProperName, "A", false},
		{"domain term shadows proper", lex.IsProperName, "Parser", false},
		{"exception Boolean removed", lex.IsProperName, "Boolean", false},
		{"exception Rosetta removed", lex.IsProperName, "Rosetta", false},
		{"exception Lr removed", lex.IsProperName, "Lr", false},
		{"bad keyword", lex.IsBadKeyword, "proceedings", true},
		{"bad keyword multiword", lex.IsBadKeyword, "communicated by", true},
		{"ordinary word not bad", lex.IsBadKeyword, "theory", false},
	}
	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fn(tt.word))
		})
	}
}

func TestFromWords_Disjoint(t *testing.T) {
	lex := FromWords(fixtureWords, Options{ExtraWords: []string{"Turing"}})
	for w := range lex.proper {
		_, ok := lex.english[w]
		assert.False(t, ok, "%q in both sets", w)
	}
	assert.True(t, lex.IsEnglish("turing"))
	assert.False(t, lex.IsProperName("Turing"), "extra word shadows proper name")
}

func TestFromWords_RemoveProperNames(t *testing.T) {
	lex := FromWords(fixtureWords, Options{RemoveProperNames: []string{"Mitchell"}})
	assert.False(t, lex.IsProperName("Mitchell"))
	assert.True(t, lex.IsProperName("John"))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words")
	require.NoError(t, os.WriteFile(path, []byte("theory\nJohn\n\n  objects  \n"), 0o644))

	lex, err := Load(types.DictionaryConfig{Path: path})
	require.NoError(t, err)

	assert.True(t, lex.IsEnglish("theory"))
	assert.True(t, lex.IsEnglish("objects"))
	assert.True(t, lex.IsProperName("John"))

	english, proper := lex.Sizes()
	assert.Equal(t, 2+len(domainWords), english)
	assert.Equal(t, 1, proper)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(types.DictionaryConfig{Path: filepath.Join(t.TempDir(), "nope")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoad)
}
