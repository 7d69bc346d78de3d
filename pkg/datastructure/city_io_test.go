package datastructure

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/lintang-b-s/citynet/pkg"
	"github.com/lintang-b-s/citynet/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertSameCity(t *testing.T, want, got *City) {
	t.Helper()
	require.Equal(t, want.NumberOfStreets(), got.NumberOfStreets())
	require.Equal(t, want.NumberOfCrossroads(), got.NumberOfCrossroads())

	for i := 0; i < want.NumberOfStreets(); i++ {
		ws, _ := want.GetStreet(StreetID(i))
		gs, _ := got.GetStreet(StreetID(i))
		assert.Equal(t, ws.GetLength(), gs.GetLength())
		require.Equal(t, ws.NumberOfBuildings(), gs.NumberOfBuildings())
		ws.ForBuildings(func(pos Index, wb *Building) {
			gb, ok := gs.GetBuilding(pos)
			require.True(t, ok)
			assert.Equal(t, wb.GetCost(), gb.GetCost())
			assert.Equal(t, wb.GetDistanceFromStreetStart(), gb.GetDistanceFromStreetStart())
			assert.Equal(t, gs.GetID(), gb.GetStreet())
		})
		assert.ElementsMatch(t, ws.GetCrossroads(), gs.GetCrossroads())
	}
	for i := 0; i < want.NumberOfCrossroads(); i++ {
		wc, _ := want.GetCrossroad(CrossroadID(i))
		gc, _ := got.GetCrossroad(CrossroadID(i))
		assert.Equal(t, wc.GetStreets(), gc.GetStreets())
	}
}

func TestSaveLoadCity(t *testing.T) {
	sample, err := BuildSampleCity()
	require.NoError(t, err)

	testCases := []struct {
		name     string
		city     *City
		filename string
	}{
		{name: "sample city", city: sample, filename: "sample.cty"},
		{name: "sample city compressed", city: sample, filename: "sample.cty.bz2"},
		{name: "empty city", city: NewCity(), filename: "empty.cty"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.filename)
			require.NoError(t, tt.city.SaveCity(path))

			loaded, err := LoadCity(path)
			require.NoError(t, err)
			assertSameCity(t, tt.city, loaded)

			// no temp files left behind
			entries, err := os.ReadDir(filepath.Dir(path))
			require.NoError(t, err)
			assert.Len(t, entries, 1)
		})
	}
}

func TestWriteCityLayout(t *testing.T) {
	city := NewCity()
	s, err := city.AddStreet(5)
	require.NoError(t, err)
	_, err = city.AddBuilding(s, 12, 9)
	require.NoError(t, err)
	c := city.AddCrossroad()
	require.NoError(t, city.Attach(c, s))

	var buf bytes.Buffer
	require.NoError(t, city.WriteCity(&buf))

	want := new(bytes.Buffer)
	le := binary.LittleEndian
	want.Write(le.AppendUint64(nil, 1)) // streets
	want.Write(le.AppendUint32(nil, 5)) // length
	want.Write(le.AppendUint64(nil, 1)) // buildings
	want.Write(le.AppendUint32(nil, 9)) // cost
	want.Write(le.AppendUint32(nil, 2)) // 12 mod 5
	want.Write(le.AppendUint64(nil, 1)) // crossroads
	want.Write(le.AppendUint64(nil, 1)) // streets at crossroad
	want.Write(le.AppendUint64(nil, 0)) // street index

	assert.Equal(t, want.Bytes(), buf.Bytes())
}

func TestWriteCityUnresolvedStreet(t *testing.T) {
	city := NewCity()
	_, err := city.AddStreet(5)
	require.NoError(t, err)
	c := city.AddCrossroad()
	cr, _ := city.GetCrossroad(c)
	cr.streets = append(cr.streets, 7)

	var buf bytes.Buffer
	require.NoError(t, city.WriteCity(&buf))

	raw := buf.Bytes()
	assert.Equal(t, pkg.INVALID_STREET_INDEX, binary.LittleEndian.Uint64(raw[len(raw)-8:]))

	_, err = ReadCity(bytes.NewReader(raw), int64(len(raw)))
	require.ErrorIs(t, err, util.ErrCorruptData)
}

func encodeSample(t *testing.T) []byte {
	t.Helper()
	city, err := BuildSampleCity()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, city.WriteCity(&buf))
	return buf.Bytes()
}

func TestReadCityCorrupt(t *testing.T) {
	sample := encodeSample(t)
	le := binary.LittleEndian

	outOfRange := new(bytes.Buffer)
	outOfRange.Write(le.AppendUint64(nil, 1))
	outOfRange.Write(le.AppendUint32(nil, 4))
	outOfRange.Write(le.AppendUint64(nil, 0))
	outOfRange.Write(le.AppendUint64(nil, 1))
	outOfRange.Write(le.AppendUint64(nil, 1))
	outOfRange.Write(le.AppendUint64(nil, 1)) // only street 0 exists

	hugeCount := new(bytes.Buffer)
	hugeCount.Write(le.AppendUint64(nil, 1<<40))

	tooManyBuildings := new(bytes.Buffer)
	tooManyBuildings.Write(le.AppendUint64(nil, 1))
	tooManyBuildings.Write(le.AppendUint32(nil, 4))
	tooManyBuildings.Write(le.AppendUint64(nil, 1000))
	tooManyBuildings.Write(le.AppendUint64(nil, 0))

	zeroLength := new(bytes.Buffer)
	zeroLength.Write(le.AppendUint64(nil, 1))
	zeroLength.Write(le.AppendUint32(nil, 0))
	zeroLength.Write(le.AppendUint64(nil, 0))
	zeroLength.Write(le.AppendUint64(nil, 0))

	testCases := []struct {
		name  string
		data  []byte
		sized bool
	}{
		{name: "truncated mid record", data: sample[:len(sample)-3], sized: true},
		{name: "truncated mid record unknown size", data: sample[:len(sample)-3], sized: false},
		{name: "truncated before crossroads", data: sample[:20], sized: true},
		{name: "empty input", data: []byte{}, sized: true},
		{name: "street index out of range", data: outOfRange.Bytes(), sized: true},
		{name: "street index out of range unknown size", data: outOfRange.Bytes(), sized: false},
		{name: "street count larger than file", data: hugeCount.Bytes(), sized: true},
		{name: "building count larger than file", data: tooManyBuildings.Bytes(), sized: true},
		{name: "zero length street", data: zeroLength.Bytes(), sized: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			size := int64(-1)
			if tt.sized {
				size = int64(len(tt.data))
			}
			city, err := ReadCity(bytes.NewReader(tt.data), size)
			require.ErrorIs(t, err, util.ErrCorruptData)
			assert.Nil(t, city)
		})
	}
}

func TestReadCityRestoresStreetSlots(t *testing.T) {
	raw := encodeSample(t)
	city, err := ReadCity(bytes.NewReader(raw), int64(len(raw)))
	require.NoError(t, err)

	s0, _ := city.GetStreet(0)
	assert.Equal(t, Slot0, s0.SlotState())
	s3, _ := city.GetStreet(3)
	assert.Equal(t, [2]CrossroadID{1, 2}, s3.GetCrossroads())
}

func TestLoadCityMissingFile(t *testing.T) {
	_, err := LoadCity(filepath.Join(t.TempDir(), "missing.cty"))
	require.ErrorIs(t, err, util.ErrIO)
}

func TestSaveCityUnwritableDir(t *testing.T) {
	city, err := BuildSampleCity()
	require.NoError(t, err)
	err = city.SaveCity(filepath.Join(t.TempDir(), "no", "such", "dir", "city.cty"))
	require.ErrorIs(t, err, util.ErrIO)
}
