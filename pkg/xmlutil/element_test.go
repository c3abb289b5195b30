package xmlutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `<?xml version="1.0"?>
<ARINC424 cycle="2401" effective_date="2024-01-25">
	<METADATA>
		<DATA_SOURCE>JEPPESEN</DATA_SOURCE>
	</METADATA>
	<AIRPORTS>
		<AIRPORT>
			<AIRPORT_IDENTIFIER>KJFK</AIRPORT_IDENTIFIER>
			<POSITION>
				<LATITUDE>40.639751</LATITUDE>
				<LONGITUDE>-73.778925</LONGITUDE>
			</POSITION>
		</AIRPORT>
		<AIRPORT>
			<AIRPORT_IDENTIFIER>KBOS</AIRPORT_IDENTIFIER>
		</AIRPORT>
	</AIRPORTS>
</ARINC424>`

func TestParse_RootAttributes(t *testing.T) {
	root, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)

	cycle, ok := root.Attr("cycle")
	assert.True(t, ok)
	assert.Equal(t, "2401", cycle)

	effective, ok := root.Attr("effective_date")
	assert.True(t, ok)
	assert.Equal(t, "2024-01-25", effective)

	_, ok = root.Attr("missing")
	assert.False(t, ok)
}

func TestParse_MalformedDocument(t *testing.T) {
	_, err := Parse([]byte("<ARINC424><unclosed></ARINC424>"))
	assert.Error(t, err)
}

func TestFind_DirectChild(t *testing.T) {
	root, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)

	airports := root.Find("AIRPORTS")
	require.NotNil(t, airports)
	assert.Equal(t, "AIRPORTS", airports.XMLName.Local)

	assert.Nil(t, root.Find("NAVAIDS"))
}

func TestFind_NestedPath(t *testing.T) {
	root, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)

	airport := root.Find("AIRPORTS").FindAll("AIRPORT")[0]
	lat := airport.Find("POSITION/LATITUDE")
	require.NotNil(t, lat)
	assert.Equal(t, "40.639751", lat.Text())
}

func TestFind_DescendantSearch(t *testing.T) {
	root, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)

	// Anywhere under the root, regardless of depth.
	source := root.Find(".//DATA_SOURCE")
	require.NotNil(t, source)
	assert.Equal(t, "JEPPESEN", source.Text())

	airport := root.Find("AIRPORTS").FindAll("AIRPORT")[0]
	lat := airport.Find(".//LATITUDE")
	require.NotNil(t, lat)
	assert.Equal(t, "40.639751", lat.Text())

	// Descendant path with a trailing relative segment.
	lon := airport.Find(".//POSITION/LONGITUDE")
	require.NotNil(t, lon)
	assert.Equal(t, "-73.778925", lon.Text())
}

func TestFindAll_DocumentOrder(t *testing.T) {
	root, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)

	airports := root.Find("AIRPORTS").FindAll("AIRPORT")
	require.Len(t, airports, 2)
	assert.Equal(t, "KJFK", airports[0].Find("AIRPORT_IDENTIFIER").Text())
	assert.Equal(t, "KBOS", airports[1].Find("AIRPORT_IDENTIFIER").Text())
}

func TestText_Trimmed(t *testing.T) {
	root, err := Parse([]byte("<X><Y>  padded  </Y><Z></Z></X>"))
	require.NoError(t, err)

	assert.Equal(t, "padded", root.Find("Y").Text())
	assert.Equal(t, "", root.Find("Z").Text())
}
