package merge

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/i18nbuilder/internal/tree"
)

func mustParse(t *testing.T, s string) *tree.Mapping {
	t.Helper()
	m, err := tree.Parse([]byte(s))
	require.NoError(t, err)
	return m
}

func get(t *testing.T, m *tree.Mapping, path ...string) tree.Node {
	t.Helper()
	var cur tree.Node = m
	for _, p := range path {
		mm, ok := cur.(*tree.Mapping)
		require.True(t, ok, "expected mapping before %q", p)
		v, ok := mm.Get(p)
		require.True(t, ok, "missing key %q", p)
		cur = v
	}
	return cur
}

func TestMerge_RecursiveUnion(t *testing.T) {
	out := All(mustParse(t, `{"a":{"x":1}}`), mustParse(t, `{"a":{"y":2}}`))

	a := get(t, out, "a").(*tree.Mapping)
	require.Equal(t, []string{"x", "y"}, a.Keys())
	require.Equal(t, tree.Number{Literal: "1"}, get(t, out, "a", "x"))
	require.Equal(t, tree.Number{Literal: "2"}, get(t, out, "a", "y"))
}

func TestMerge_ScalarLaterWins(t *testing.T) {
	out := All(mustParse(t, `{"a":1}`), mustParse(t, `{"a":2}`))
	require.Equal(t, tree.Number{Literal: "2"}, get(t, out, "a"))
}

func TestMerge_MappingReplacesScalar(t *testing.T) {
	out := All(mustParse(t, `{"a":1}`), mustParse(t, `{"a":{"x":1}}`))

	a, ok := get(t, out, "a").(*tree.Mapping)
	require.True(t, ok)
	require.Equal(t, []string{"x"}, a.Keys())
}

func TestMerge_ScalarAfterMappingOverwrites(t *testing.T) {
	out := All(mustParse(t, `{"a":{"x":1}}`), mustParse(t, `{"a":"flat"}`))
	require.Equal(t, tree.String{Value: "flat"}, get(t, out, "a"))
}

func TestMerge_MappingReplacesSequence(t *testing.T) {
	out := All(mustParse(t, `{"a":[1,2]}`), mustParse(t, `{"a":{"x":1}}`))

	a, ok := get(t, out, "a").(*tree.Mapping)
	require.True(t, ok)
	require.Equal(t, []string{"x"}, a.Keys())
}

func TestMerge_SequenceReplacedWhole(t *testing.T) {
	out := All(mustParse(t, `{"a":[1,2]}`), mustParse(t, `{"a":[3]}`))

	seq, ok := get(t, out, "a").(*tree.Sequence)
	require.True(t, ok)
	require.Equal(t, []tree.Node{tree.Number{Literal: "3"}}, seq.Items)
}

func TestMerge_NullOverwrites(t *testing.T) {
	out := All(mustParse(t, `{"a":{"x":1}}`), mustParse(t, `{"a":null}`))
	require.Equal(t, tree.Null{}, get(t, out, "a"))
}

func TestMerge_ReturnsTargetAndKeepsOrder(t *testing.T) {
	target := mustParse(t, `{"b":1,"a":{"k":1}}`)
	got := Merge(target, mustParse(t, `{"c":3,"a":{"j":2},"b":4}`))

	require.Same(t, target, got)
	require.Equal(t, []string{"b", "a", "c"}, got.Keys())
	require.Equal(t, []string{"k", "j"}, get(t, got, "a").(*tree.Mapping).Keys())
}

func TestMerge_DoesNotAliasSourceMappings(t *testing.T) {
	src := mustParse(t, `{"a":{"x":1}}`)
	out := All(src)
	Merge(out, mustParse(t, `{"a":{"y":2}}`))

	require.Equal(t, []string{"x"}, get(t, src, "a").(*tree.Mapping).Keys())
}

func TestAll_Empty(t *testing.T) {
	require.Equal(t, 0, All().Len())
}
