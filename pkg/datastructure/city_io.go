package datastructure

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/citynet/pkg"
	"github.com/lintang-b-s/citynet/pkg/util"
	"golang.org/x/exp/constraints"
)

/*
City file layout, little-endian, no header:

	u64 street_count
	  u32 length
	  u64 building_count
	    u32 cost
	    u32 distance_from_street_start
	u64 crossroad_count
	  u64 streets_at_crossroad_count
	    u64 street_index

a street index that cannot be resolved on save is written as pkg.INVALID_STREET_INDEX.
*/

const (
	minStreetRecordSize    = 4 + 8
	buildingRecordSize     = 4 + 4
	minCrossroadRecordSize = 8
	streetIndexSize        = 8

	// upper bound for slice preallocation when the stream length is unknown (compressed files)
	maxPrealloc = 1 << 16

	compressedExt = ".bz2"
)

type cityWriter struct {
	w   *bufio.Writer
	buf [8]byte
	err error
}

func (cw *cityWriter) writeU32(v uint32) {
	if cw.err != nil {
		return
	}
	binary.LittleEndian.PutUint32(cw.buf[:4], v)
	_, cw.err = cw.w.Write(cw.buf[:4])
}

func (cw *cityWriter) writeU64(v uint64) {
	if cw.err != nil {
		return
	}
	binary.LittleEndian.PutUint64(cw.buf[:8], v)
	_, cw.err = cw.w.Write(cw.buf[:8])
}

// WriteCity encodes the city into w.
func (c *City) WriteCity(w io.Writer) error {
	cw := &cityWriter{w: bufio.NewWriter(w)}

	cw.writeU64(uint64(len(c.streets)))
	for _, s := range c.streets {
		cw.writeU32(s.length)
		cw.writeU64(uint64(len(s.buildings)))
		for _, b := range s.buildings {
			cw.writeU32(b.cost)
			cw.writeU32(b.distanceFromStreetStart)
		}
	}

	cw.writeU64(uint64(len(c.crossroads)))
	for _, cr := range c.crossroads {
		cw.writeU64(uint64(len(cr.streets)))
		for _, streetID := range cr.streets {
			cw.writeU64(c.streetIndexOf(streetID))
		}
	}

	if cw.err != nil {
		return util.WrapErrorf(cw.err, util.ErrIO, "write city")
	}
	if err := cw.w.Flush(); err != nil {
		return util.WrapErrorf(err, util.ErrIO, "flush city")
	}
	return nil
}

// streetIndexOf scans the street sequence for id.
func (c *City) streetIndexOf(id StreetID) uint64 {
	for i, s := range c.streets {
		if s.id == id {
			return uint64(i)
		}
	}
	return pkg.INVALID_STREET_INDEX
}

type cityReader struct {
	r         *bufio.Reader
	buf       [8]byte
	remaining int64 // -1 when the stream length is unknown
}

func (cr *cityReader) read(n int) ([]byte, error) {
	if cr.remaining >= 0 && int64(n) > cr.remaining {
		return nil, util.WrapErrorf(io.ErrUnexpectedEOF, util.ErrCorruptData, "city file truncated")
	}
	if _, err := io.ReadFull(cr.r, cr.buf[:n]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, util.WrapErrorf(err, util.ErrCorruptData, "city file truncated")
		}
		return nil, util.WrapErrorf(err, util.ErrIO, "read city")
	}
	if cr.remaining >= 0 {
		cr.remaining -= int64(n)
	}
	return cr.buf[:n], nil
}

func (cr *cityReader) readU32() (uint32, error) {
	b, err := cr.read(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (cr *cityReader) readU64() (uint64, error) {
	b, err := cr.read(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// readCount reads a record count and checks that count records of at least recordSize bytes can still follow.
func (cr *cityReader) readCount(what string, recordSize int64) (Index, error) {
	n, err := cr.readU64()
	if err != nil {
		return 0, err
	}
	if n >= uint64(INVALID_INDEX) {
		return 0, util.WrapErrorf(nil, util.ErrCorruptData, "%s count %d out of range", what, n)
	}
	if cr.remaining >= 0 && n > uint64(cr.remaining/recordSize) {
		return 0, util.WrapErrorf(nil, util.ErrCorruptData,
			"%s count %d exceeds remaining %d bytes", what, n, cr.remaining)
	}
	return Index(n), nil
}

func preallocSize(n Index) int {
	return util.MinInt(int(n), maxPrealloc)
}

// checkedIndex converts idx into an Index below n.
func checkedIndex[T constraints.Unsigned](idx T, n int) (Index, bool) {
	if uint64(idx) >= uint64(n) {
		return INVALID_INDEX, false
	}
	return Index(idx), true
}

// ReadCity decodes a city from r. size is the number of bytes r holds, or -1 if unknown.
func ReadCity(r io.Reader, size int64) (*City, error) {
	cr := &cityReader{r: bufio.NewReader(r), remaining: size}

	numStreets, err := cr.readCount("street", minStreetRecordSize)
	if err != nil {
		return nil, err
	}

	city := &City{streets: make([]*Street, 0, preallocSize(numStreets))}
	for i := Index(0); i < numStreets; i++ {
		length, err := cr.readU32()
		if err != nil {
			return nil, err
		}
		if length == 0 {
			return nil, util.WrapErrorf(nil, util.ErrCorruptData, "street %d has zero length", i)
		}
		street := newStreet(StreetID(i), length)

		numBuildings, err := cr.readCount("building", buildingRecordSize)
		if err != nil {
			return nil, err
		}
		street.buildings = make([]Building, 0, preallocSize(numBuildings))
		for b := Index(0); b < numBuildings; b++ {
			cost, err := cr.readU32()
			if err != nil {
				return nil, err
			}
			dist, err := cr.readU32()
			if err != nil {
				return nil, err
			}
			street.buildings = append(street.buildings, Building{
				street:                  street.id,
				distanceFromStreetStart: dist,
				cost:                    cost,
			})
		}
		city.streets = append(city.streets, street)
	}

	numCrossroads, err := cr.readCount("crossroad", minCrossroadRecordSize)
	if err != nil {
		return nil, err
	}
	city.crossroads = make([]*Crossroad, 0, preallocSize(numCrossroads))
	for i := Index(0); i < numCrossroads; i++ {
		crossroad := &Crossroad{id: CrossroadID(i)}

		numStreetsAt, err := cr.readCount("crossroad street", streetIndexSize)
		if err != nil {
			return nil, err
		}
		crossroad.streets = make([]StreetID, 0, preallocSize(numStreetsAt))
		for s := Index(0); s < numStreetsAt; s++ {
			rawIdx, err := cr.readU64()
			if err != nil {
				return nil, err
			}
			idx, ok := checkedIndex(rawIdx, len(city.streets))
			if !ok {
				return nil, util.WrapErrorf(nil, util.ErrCorruptData,
					"crossroad %d references street %d, city has %d streets", i, rawIdx, len(city.streets))
			}
			crossroad.streets = append(crossroad.streets, StreetID(idx))
			// a street listed by more than two crossroads keeps its first two
			city.streets[idx].takeSlot(crossroad.id)
		}
		city.crossroads = append(city.crossroads, crossroad)
	}

	return city, nil
}

func isCompressed(filename string) bool {
	return strings.HasSuffix(filename, compressedExt)
}

// SaveCity writes the city to filename, bzip2 compressed if filename ends with .bz2.
// The file is written next to its destination and renamed into place.
func (c *City) SaveCity(filename string) error {
	dir := filepath.Dir(filename)
	f, err := os.CreateTemp(dir, filepath.Base(filename)+".tmp-*")
	if err != nil {
		return util.WrapErrorf(err, util.ErrIO, "create city file %s", filename)
	}
	tmpName := f.Name()
	defer os.Remove(tmpName)

	if err := c.writeCityFile(f, isCompressed(filename)); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return util.WrapErrorf(err, util.ErrIO, "close city file %s", filename)
	}
	if err := os.Rename(tmpName, filename); err != nil {
		return util.WrapErrorf(err, util.ErrIO, "rename city file %s", filename)
	}
	return nil
}

func (c *City) writeCityFile(f *os.File, compressed bool) error {
	if !compressed {
		return c.WriteCity(f)
	}

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return util.WrapErrorf(err, util.ErrIO, "bzip2 writer")
	}
	if err := c.WriteCity(bz); err != nil {
		bz.Close()
		return err
	}
	if err := bz.Close(); err != nil {
		return util.WrapErrorf(err, util.ErrIO, "bzip2 close")
	}
	return nil
}

// LoadCity reads a city written by SaveCity.
func LoadCity(filename string) (*City, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrIO, "open city file %s", filename)
	}
	defer f.Close()

	if isCompressed(filename) {
		bz, err := bzip2.NewReader(f, nil)
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrCorruptData, "bzip2 reader")
		}
		defer bz.Close()
		return ReadCity(bz, -1)
	}

	info, err := f.Stat()
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrIO, "stat city file %s", filename)
	}
	return ReadCity(f, info.Size())
}
