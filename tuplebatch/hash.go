package tuplebatch

import (
	"encoding/binary"
	"fmt"
	"math"

	xxhash "github.com/cespare/xxhash/v2"

	"github.com/atcbosselut/myria"
)

// Type tags mixed into row hashes, so that equal byte patterns of different
// types cannot collide structurally.
const (
	hashTagBool = byte(iota + 1)
	hashTagInt32
	hashTagInt64
	hashTagFloat32
	hashTagFloat64
	hashTagString
)

// HashRow computes a stable hash of the given key columns of one row. For
// fixed key values the result is identical on every invocation, within and
// across runs, which is what makes hash partitioning deterministic.
func HashRow(b myria.TupleBatch, row int, keyColumns []int) (uint64, error) {
	hasher := xxhash.New()
	var buf [9]byte
	for _, col := range keyColumns {
		v, err := b.GetValue(col, row)
		if err != nil {
			return 0, err
		}
		switch val := v.(type) {
		case bool:
			buf[0] = hashTagBool
			buf[1] = 0
			if val {
				buf[1] = 1
			}
			hasher.Write(buf[:2])
		case int32:
			buf[0] = hashTagInt32
			binary.LittleEndian.PutUint32(buf[1:5], uint32(val))
			hasher.Write(buf[:5])
		case int64:
			buf[0] = hashTagInt64
			binary.LittleEndian.PutUint64(buf[1:9], uint64(val))
			hasher.Write(buf[:9])
		case float32:
			buf[0] = hashTagFloat32
			binary.LittleEndian.PutUint32(buf[1:5], math.Float32bits(val))
			hasher.Write(buf[:5])
		case float64:
			buf[0] = hashTagFloat64
			binary.LittleEndian.PutUint64(buf[1:9], math.Float64bits(val))
			hasher.Write(buf[:9])
		case string:
			buf[0] = hashTagString
			binary.LittleEndian.PutUint64(buf[1:9], uint64(len(val)))
			hasher.Write(buf[:9])
			hasher.WriteString(val)
		default:
			return 0, fmt.Errorf("Cannot hash value of unsupported type %T", v)
		}
	}
	return hasher.Sum64(), nil
}
