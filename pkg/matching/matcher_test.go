package matching

import (
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/ajxudir/tabsplit/pkg/constants"
)

func TestMatchLongestPrefixWins(t *testing.T) {
	m := NewMatcher(NewMappingTable([]Pair{
		{"中国", "China"},
		{"中国移动", "Mobile"},
		{"中国移动北京", "Mobile-BJ"},
	}), "")

	assert.Equal(t, "Mobile-BJ", m.Match("中国移动北京分公司"))
	assert.Equal(t, "Mobile", m.Match("中国移动上海"))
	assert.Equal(t, "China", m.Match("中国联通"))
	assert.Equal(t, constants.UnmatchedLabel, m.Match("联通"))
}

func TestMatchCaseInsensitiveAndTrimmed(t *testing.T) {
	m := NewMatcher(NewMappingTable([]Pair{{"cmcc", "Mobile"}, {"Ελλάδα", "GR"}}), "none")

	assert.Equal(t, "Mobile", m.Match("  CMCC-Beijing "))
	assert.Equal(t, "GR", m.Match("ΕΛΛΆΔΑ-Athens"))
	assert.Equal(t, "none", m.Match("xcmcc"))
	assert.Equal(t, "none", m.Match("   "))
	assert.Equal(t, "none", m.Match(""))
	assert.Equal(t, "none", m.Match("cm"))
	assert.Equal(t, "none", m.UnmatchedLabel())
}

func TestMatchTieKeepsMappingOrder(t *testing.T) {
	m := NewMatcher(NewMappingTable([]Pair{{"ab", "first"}, {"AB", "second"}, {"a", "short"}}), "")
	assert.Equal(t, "first", m.Match("abc"))
}

func TestMatchWithEmptyMapping(t *testing.T) {
	m := NewMatcher(nil, "")
	assert.Equal(t, constants.UnmatchedLabel, m.Match("anything"))
}

// TestMatchAssignsLongestPattern checks the label against a brute-force scan
// for the longest matching pattern.
func TestMatchAssignsLongestPattern(t *testing.T) {
	pairs := []Pair{{"a", "1"}, {"ab", "2"}, {"abc", "3"}, {"b", "4"}, {"bcd", "5"}, {"x", "6"}}
	m := NewMatcher(NewMappingTable(pairs), "")

	subjects := []string{"a", "ab", "abcd", "abx", "b", "bc", "bcde", "c", "xyz", "AbC"}
	for _, s := range subjects {
		want := constants.UnmatchedLabel
		best := -1
		for _, p := range pairs {
			n := utf8.RuneCountInString(p.Pattern)
			if hasPrefixFold(s, p.Pattern, n) && n > best {
				best = n
				want = p.Result
			}
		}
		assert.Equal(t, want, m.Match(s), s)
	}
}

func TestMatcherConcurrentUse(t *testing.T) {
	m := NewMatcher(NewMappingTable([]Pair{{"a", "A"}}), "")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, "A", m.Match("abc"))
			}
		}()
	}
	wg.Wait()
}

func TestHasPrefixFold(t *testing.T) {
	assert.True(t, hasPrefixFold("Hello", "he", 2))
	assert.False(t, hasPrefixFold("h", "he", 2))
	assert.True(t, hasPrefixFold("北京市", "北京", 2))
	assert.True(t, hasPrefixFold("anything", "", 0))
}
