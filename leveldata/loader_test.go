package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="8" tilewidth="32" tileheight="32" infinite="0" nextlayerid="5" nextobjectid="10">
 <objectgroup id="1" name="Walls">
  <object id="1" x="0" y="0" width="320" height="32"/>
  <object id="2" x="0" y="224" width="320" height="32"/>
 </objectgroup>
 <objectgroup id="2" name="Sensors">
  <object id="3" x="128" y="96" width="64" height="64"/>
 </objectgroup>
 <objectgroup id="3" name="Platforms">
  <object id="4" x="64" y="160" width="96" height="16">
   <properties>
    <property name="travel" type="int" value="48"/>
   </properties>
  </object>
  <object id="5" x="192" y="160" width="96" height="16"/>
 </objectgroup>
 <objectgroup id="4" name="Spawns">
  <object id="6" name="player" x="48" y="48"/>
  <object id="7" name="crate" x="96" y="48"/>
 </objectgroup>
</map>
`

func TestLoadParsesObjectGroups(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/test.tmx": &fstest.MapFile{Data: []byte(sampleTMX)},
	}

	level, err := Load(fsys, "levels/test.tmx")
	require.NoError(t, err)

	assert.Equal(t, 320, level.PixelW)
	assert.Equal(t, 256, level.PixelH)

	require.Len(t, level.Walls, 2)
	assert.Equal(t, Rect{X: 0, Y: 0, W: 320, H: 32}, level.Walls[0])

	require.Len(t, level.Sensors, 1)
	assert.Equal(t, Rect{X: 128, Y: 96, W: 64, H: 64}, level.Sensors[0])

	require.Len(t, level.Platforms, 2)
	assert.Equal(t, 48.0, level.Platforms[0].Travel)
	assert.Equal(t, float64(defaultTravel), level.Platforms[1].Travel, "missing property falls back")

	require.Len(t, level.Spawns, 2)
	assert.Equal(t, Spawn{Name: "player", X: 48, Y: 48}, level.Spawns[0])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(fstest.MapFS{}, "levels/nope.tmx")
	assert.Error(t, err)
}
