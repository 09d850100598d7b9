package words

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode"

	"github.com/npillmayer/avl"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
)

// ErrNoInput is flagged if a vocabulary is requested for a nil reader.
var ErrNoInput = errors.New("words: no input")

// Vocabulary reads text from r and returns a tree of all distinct words.
// Words are compared case-sensitive.
func Vocabulary(r io.Reader) (*avl.Tree[string], error) {
	return collect(r, false)
}

// VocabularyFold reads text from r and returns a tree of all distinct words,
// folded to lower case.
func VocabularyFold(r io.Reader) (*avl.Tree[string], error) {
	return collect(r, true)
}

// FromString returns a tree of all distinct words of s.
func FromString(s string) *avl.Tree[string] {
	tree, err := collect(strings.NewReader(s), false)
	if err != nil { // cannot happen for a string reader
		panic(err)
	}
	return tree
}

func collect(r io.Reader, fold bool) (*avl.Tree[string], error) {
	if r == nil {
		return nil, ErrNoInput
	}
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(r))
	tree := avl.NewOrdered[string]()
	for segmenter.Next() {
		word := trim(string(segmenter.Bytes()))
		if word == "" {
			continue
		}
		if fold {
			word = strings.ToLower(word)
		}
		tree.Insert(word)
	}
	tracer().Debugf("vocabulary of %d words", tree.Len())
	return tree, nil
}

func trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	})
}
