package tuplebatch

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/RoaringBitmap/roaring"
	"github.com/atcbosselut/myria"
	"github.com/atcbosselut/myria/errors"
	"github.com/pierrec/lz4"
)

// ToBytes encodes a TupleBatch into an lz4-compressed frame suitable for
// transfer between workers: row count, validity bitmap, then one typed
// payload per column in schema order.
func ToBytes(b myria.TupleBatch) ([]byte, error) {
	var buf bytes.Buffer
	zw := lz4.NewWriter(&buf)
	if err := binary.Write(zw, binary.LittleEndian, uint32(b.NumRows())); err != nil {
		return nil, err
	}
	valid := roaring.New()
	for _, row := range b.ValidRowIndices() {
		valid.Add(uint32(row))
	}
	bmBytes, err := valid.ToBytes()
	if err != nil {
		return nil, err
	}
	if err := binary.Write(zw, binary.LittleEndian, uint32(len(bmBytes))); err != nil {
		return nil, err
	}
	if _, err := zw.Write(bmBytes); err != nil {
		return nil, err
	}
	schema := b.Schema()
	for col := 0; col < schema.NumColumns(); col++ {
		for row := 0; row < b.NumRows(); row++ {
			v, err := b.GetValue(col, row)
			if err != nil {
				return nil, err
			}
			switch val := v.(type) {
			case bool:
				var bt byte
				if val {
					bt = 1
				}
				if err := binary.Write(zw, binary.LittleEndian, bt); err != nil {
					return nil, err
				}
			case int32, int64, float32, float64:
				if err := binary.Write(zw, binary.LittleEndian, val); err != nil {
					return nil, err
				}
			case string:
				if err := binary.Write(zw, binary.LittleEndian, uint32(len(val))); err != nil {
					return nil, err
				}
				if _, err := zw.Write([]byte(val)); err != nil {
					return nil, err
				}
			default:
				return nil, fmt.Errorf("Cannot encode value of unsupported type %T", v)
			}
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FromBytes decodes an lz4-compressed frame produced by ToBytes into an
// immutable TupleBatch with the given Schema. Structural disagreements
// between the frame and the schema surface as CorruptBatchErrors.
func FromBytes(data []byte, schema myria.Schema) (myria.TupleBatch, error) {
	raw, err := ioutil.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, err
	}
	r := bytes.NewReader(raw)
	var numRows uint32
	if err := binary.Read(r, binary.LittleEndian, &numRows); err != nil {
		return nil, err
	}
	if int(numRows) > myria.BatchSize {
		return nil, errors.CorruptBatchError{Reason: fmt.Sprintf("frame declares %d rows, above the batch bound of %d", numRows, myria.BatchSize)}
	}
	var bmLen uint32
	if err := binary.Read(r, binary.LittleEndian, &bmLen); err != nil {
		return nil, err
	}
	bmBytes := make([]byte, bmLen)
	if _, err := io.ReadFull(r, bmBytes); err != nil {
		return nil, err
	}
	valid := roaring.New()
	if _, err := valid.FromBuffer(bmBytes); err != nil {
		return nil, err
	}
	columns := make([]myria.Column, schema.NumColumns())
	for col := 0; col < schema.NumColumns(); col++ {
		switch schema.ColumnType(col).(type) {
		case *myria.BoolColumnType:
			raw := make([]byte, numRows)
			if _, err := io.ReadFull(r, raw); err != nil {
				return nil, err
			}
			values := make([]bool, numRows)
			for i, bt := range raw {
				values[i] = bt != 0
			}
			columns[col] = &boolColumn{values: values}
		case *myria.Int32ColumnType:
			values := make([]int32, numRows)
			if err := binary.Read(r, binary.LittleEndian, values); err != nil {
				return nil, err
			}
			columns[col] = &int32Column{values: values}
		case *myria.Int64ColumnType:
			values := make([]int64, numRows)
			if err := binary.Read(r, binary.LittleEndian, values); err != nil {
				return nil, err
			}
			columns[col] = &int64Column{values: values}
		case *myria.Float32ColumnType:
			values := make([]float32, numRows)
			if err := binary.Read(r, binary.LittleEndian, values); err != nil {
				return nil, err
			}
			columns[col] = &float32Column{values: values}
		case *myria.Float64ColumnType:
			values := make([]float64, numRows)
			if err := binary.Read(r, binary.LittleEndian, values); err != nil {
				return nil, err
			}
			columns[col] = &float64Column{values: values}
		case *myria.StringColumnType:
			values := make([]string, numRows)
			for i := range values {
				var strLen uint32
				if err := binary.Read(r, binary.LittleEndian, &strLen); err != nil {
					return nil, err
				}
				strBytes := make([]byte, strLen)
				if _, err := io.ReadFull(r, strBytes); err != nil {
					return nil, err
				}
				values[i] = string(strBytes)
			}
			columns[col] = &stringColumn{values: values}
		default:
			return nil, fmt.Errorf("%s is not a supported ColumnType", myria.ColumnTypeName(schema.ColumnType(col)))
		}
	}
	if r.Len() != 0 {
		return nil, errors.CorruptBatchError{Reason: fmt.Sprintf("%d trailing bytes after the final column payload", r.Len())}
	}
	return createTupleBatchWithValidity(schema, columns, int(numRows), valid)
}
