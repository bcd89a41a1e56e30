package xmltree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const sample = `<?xml version="1.0" encoding="utf-8"?>
<CodeMetricsReport Version="1.0">
  <Targets>
    <Target Name="App.csproj">
      <Assembly Name="App, Version=1.0.0.0">
        <Metrics>
          <Metric Name="MaintainabilityIndex" Value="80" />
        </Metrics>
      </Assembly>
    </Target>
    <Target Name="Other.csproj">
      <Assembly Name="Other, Version=2.0.0.0" />
    </Target>
  </Targets>
</CodeMetricsReport>`

func TestParse_BuildsTree(t *testing.T) {
	doc, err := Parse([]byte(sample))
	require.NoError(t, err)
	require.NotNil(t, doc.Root)

	assert.Equal(t, "CodeMetricsReport", doc.Root.Name)
	version, ok := doc.Root.Attr("Version")
	assert.True(t, ok)
	assert.Equal(t, "1.0", version)

	targets := doc.Root.Child("Targets")
	require.NotNil(t, targets)
	assert.Len(t, targets.ChildrenNamed("Target"), 2)
	assert.Nil(t, targets.Child("Missing"))
}

func TestDocument_FindFirst(t *testing.T) {
	doc, err := Parse([]byte(sample))
	require.NoError(t, err)

	assembly := doc.FindFirst("Assembly")
	require.NotNil(t, assembly)
	name, _ := assembly.Attr("Name")
	assert.Equal(t, "App, Version=1.0.0.0", name)
	assert.Equal(t, "CodeMetricsReport/Targets/Target/Assembly", assembly.Path())

	assert.Same(t, doc.Root, doc.FindFirst("CodeMetricsReport"))
	assert.Nil(t, doc.FindFirst("Namespaces"))
}

func TestElement_AttrMissing(t *testing.T) {
	doc, err := Parse([]byte(`<a b=""/>`))
	require.NoError(t, err)

	v, ok := doc.Root.Attr("b")
	assert.True(t, ok)
	assert.Equal(t, "", v)

	_, ok = doc.Root.Attr("c")
	assert.False(t, ok)
}

func TestParse_NamespacedNames(t *testing.T) {
	doc, err := Parse([]byte(`<r:Report xmlns:r="urn:x"><r:Assembly r:Name="A, Version=1"/></r:Report>`))
	require.NoError(t, err)

	assembly := doc.FindFirst("Assembly")
	require.NotNil(t, assembly)
	name, ok := assembly.Attr("Name")
	assert.True(t, ok)
	assert.Equal(t, "A, Version=1", name)
}

func TestParse_Malformed(t *testing.T) {
	tests := map[string]string{
		"empty":           ``,
		"unclosed":        `<a><b></a>`,
		"multiple roots":  `<a/><b/>`,
		"text after root": `<a/>junk`,
		"not xml":         `hello world`,
		"bad attribute":   `<a b=c/>`,
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(input))
			assert.Error(t, err)
		})
	}
}

func TestParse_ByteOrderMark(t *testing.T) {
	doc, err := Parse(append([]byte("\xef\xbb\xbf"), sample...))
	require.NoError(t, err)
	assert.Equal(t, "CodeMetricsReport", doc.Root.Name)
	assert.NotNil(t, doc.FindFirst("Assembly"))
}

func encodeUTF16(t *testing.T, endianness unicode.Endianness, bom unicode.BOMPolicy, s string) []byte {
	t.Helper()
	out, _, err := transform.Bytes(unicode.UTF16(endianness, bom).NewEncoder(), []byte(s))
	require.NoError(t, err)
	return out
}

func TestParse_DeclaredEncodings(t *testing.T) {
	const utf16Doc = `<?xml version="1.0" encoding="utf-16"?><Assembly Name="Café, Version=1.0"/>`

	tests := map[string][]byte{
		"utf-16 little endian with bom": encodeUTF16(t, unicode.LittleEndian, unicode.UseBOM, utf16Doc),
		"utf-16 big endian with bom":    encodeUTF16(t, unicode.BigEndian, unicode.UseBOM, utf16Doc),
		"utf-16 big endian without bom": encodeUTF16(t, unicode.BigEndian, unicode.IgnoreBOM, utf16Doc),
		"utf-16 declared on utf-8 text": []byte(utf16Doc),
		"windows-1252":                  []byte("<?xml version=\"1.0\" encoding=\"windows-1252\"?><Assembly Name=\"Caf\xe9, Version=1.0\"/>"),
		"iso-8859-1":                    []byte("<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><Assembly Name=\"Caf\xe9, Version=1.0\"/>"),
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			doc, err := Parse(input)
			require.NoError(t, err)
			value, ok := doc.Root.Attr("Name")
			require.True(t, ok)
			assert.Equal(t, "Caf\u00e9, Version=1.0", value)
		})
	}
}

func TestParse_UnknownEncoding(t *testing.T) {
	_, err := Parse([]byte(`<?xml version="1.0" encoding="x-no-such-charset"?><a/>`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "x-no-such-charset")
}
