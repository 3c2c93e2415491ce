package emit

import (
	"os"
	"path/filepath"
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

func render(t *testing.T, src string, f Format, minify bool) string {
	t.Helper()
	out, err := Render(mustParse(t, src), "en", f, minify)
	require.NoError(t, err)
	return string(out)
}

const sample = `{"t":{"k":"<h1>Hi</h1>","k2":"text"},"list":[1,true,null],"empty":{},"none":[]}`

func TestRender_JSON(t *testing.T) {
	require.Equal(t,
		`{"t":{"k":"<h1>Hi</h1>","k2":"text"},"list":[1,true,null],"empty":{},"none":[]}`,
		render(t, sample, FormatJSON, true))

	want := `{
  "t": {
    "k": "<h1>Hi</h1>",
    "k2": "text"
  },
  "list": [
    1,
    true,
    null
  ],
  "empty": {},
  "none": []
}`
	require.Equal(t, want, render(t, sample, FormatJSON, false))
}

func TestRender_JSON5(t *testing.T) {
	require.Equal(t,
		`{t:{k:'<h1>Hi</h1>',k2:'text'},list:[1,true,null],empty:{},none:[]}`,
		render(t, sample, FormatJSON5, true))

	want := `{
  t: {
    k: '<h1>Hi</h1>',
    k2: 'text',
  },
  list: [
    1,
    true,
    null,
  ],
  empty: {},
  none: [],
}`
	require.Equal(t, want, render(t, sample, FormatJSON5, false))
}

func TestRender_JSON5QuotedKeysAndStrings(t *testing.T) {
	out := render(t, `{"foo-bar":"it's","1x":"say \"hi\"","ok_$":"a'b\"c'"}`, FormatJSON5, true)
	require.Equal(t, `{'foo-bar':"it's",'1x':'say "hi"',ok_$:"a'b\"c'"}`, out)
}

func TestRender_JSExport(t *testing.T) {
	out, err := Render(mustParse(t, `{"foo_1":"foo_1:","1foo":1,"foo-bar":{"$x":"y"}}`), "en", FormatJS, true)
	require.NoError(t, err)
	require.Equal(t,
		"export const enLocale = {foo_1:\"foo_1:\",\"1foo\":1,\"foo-bar\":{$x:\"y\"}};\nexport default enLocale;\n",
		string(out))
}

func TestRender_JSExportPretty(t *testing.T) {
	out, err := Render(mustParse(t, `{"a":{"b":"\"c\":"}}`), "zh-CN", FormatJS, false)
	require.NoError(t, err)
	want := "export const zhCNLocale = {\n  a: {\n    b: \"\\\"c\\\":\"\n  }\n};\nexport default zhCNLocale;\n"
	require.Equal(t, want, string(out))
}

func TestRender_UnknownFormat(t *testing.T) {
	_, err := Render(tree.NewMapping(), "en", Format("xml"), false)
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestRender_EmptyTree(t *testing.T) {
	require.Equal(t, "{}", render(t, `{}`, FormatJSON, false))
	require.Equal(t, "{}", render(t, `{}`, FormatJSON5, false))
}

func TestQuoteJSON(t *testing.T) {
	require.Equal(t, `"a\"b\\c\n\t\u0001<&>"`, quoteJSON("a\"b\\c\n\t\x01<&>"))
}

func TestQuoteJSON5_Escapes(t *testing.T) {
	require.Equal(t, `'\0a\x001\v\x01\u2028'`, quoteJSON5("\x00a\x001\v\x01\u2028"))
}

func TestIsBareKey(t *testing.T) {
	for _, k := range []string{"foo_1", "_x", "$", "A9", "camelCase"} {
		require.True(t, isBareKey(k), k)
	}
	for _, k := range []string{"1foo", "foo-bar", "", "a b", "é"} {
		require.False(t, isBareKey(k), k)
	}
}

func TestBindingName(t *testing.T) {
	require.Equal(t, "enLocale", BindingName("en"))
	require.Equal(t, "zhCNLocale", BindingName("zh-CN"))
	require.Equal(t, "ptBrLocale", BindingName("pt-br"))
	require.Equal(t, "_1xLocale", BindingName("1x"))
}

func TestFormatNumber(t *testing.T) {
	tests := map[string]string{
		"1":        "1",
		"1.0":      "1",
		"1e2":      "100",
		"-0":       "0",
		"0.5":      "0.5",
		"1e-7":     "1e-7",
		"0.000001": "0.000001",
		"1e21":     "1e+21",
		"1.5E300":  "1.5e+300",
	}
	for in, want := range tests {
		got, inf := formatNumber(in)
		require.Zero(t, inf, in)
		require.Equal(t, want, got, in)
	}

	_, inf := formatNumber("1e400")
	require.Equal(t, 1, inf)
	require.Equal(t, `{"big":null}`, render(t, `{"big":1e400}`, FormatJSON, true))
	require.Equal(t, `{big:Infinity}`, render(t, `{"big":1e400}`, FormatJSON5, true))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	require.Equal(t, FormatJSON, f)

	f, err = ParseFormat("JSON5")
	require.NoError(t, err)
	require.Equal(t, FormatJSON5, f)

	_, err = ParseFormat("yaml")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestEmit_CreatesDirectoryAndOverwrites(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "locales")
	e := New(out, FormatJSON, true)

	path, err := e.Emit("en", mustParse(t, `{"a":"first","b":"long value"}`))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(out, "en.json"), path)

	path, err = e.Emit("en", mustParse(t, `{"a":"second"}`))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, `{"a":"second"}`, string(data))
}

func TestEmit_ExtensionFollowsFormat(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []Format{FormatJSON, FormatJSON5, FormatJS} {
		path, err := New(dir, f, false).Emit("de", tree.NewMapping())
		require.NoError(t, err)
		require.Equal(t, filepath.Join(dir, "de."+string(f)), path)
		require.FileExists(t, path)
	}
}

func TestEmit_UnwritableDestination(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := New(filepath.Join(blocker, "out"), FormatJSON, false).Emit("en", tree.NewMapping())
	require.Error(t, err)
}
