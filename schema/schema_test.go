package schema

import (
	"testing"

	"github.com/atcbosselut/myria"
	"github.com/atcbosselut/myria/errors"
	"github.com/stretchr/testify/require"
)

func TestCreateSchema(t *testing.T) {
	s, err := CreateSchema(
		[]string{"id", "name", "score"},
		[]myria.ColumnType{&myria.Int64ColumnType{}, &myria.StringColumnType{}, &myria.Float64ColumnType{}},
	)
	require.Nil(t, err)
	require.Equal(t, 3, s.NumColumns())
	require.Equal(t, "name", s.ColumnName(1))
	require.True(t, s.HasColumn("score"))
	require.False(t, s.HasColumn("missing"))
	i, err := s.IndexOf("score")
	require.Nil(t, err)
	require.Equal(t, 2, i)
	_, err = s.IndexOf("missing")
	require.NotNil(t, err)
	_, ok := err.(errors.NoSuchColumnError)
	require.True(t, ok)
}

func TestCreateSchemaDuplicateName(t *testing.T) {
	_, err := CreateSchema(
		[]string{"id", "id"},
		[]myria.ColumnType{&myria.Int64ColumnType{}, &myria.Int64ColumnType{}},
	)
	require.NotNil(t, err)
	_, ok := err.(errors.DuplicateColumnError)
	require.True(t, ok)
}

func TestCreateSchemaMismatchedLengths(t *testing.T) {
	_, err := CreateSchema([]string{"id"}, []myria.ColumnType{})
	require.NotNil(t, err)
}

func TestSchemaEquality(t *testing.T) {
	s1, err := CreateSchema(
		[]string{"id", "name"},
		[]myria.ColumnType{&myria.Int64ColumnType{}, &myria.StringColumnType{}},
	)
	require.Nil(t, err)
	s2, err := CreateSchema(
		[]string{"id", "name"},
		[]myria.ColumnType{&myria.Int64ColumnType{}, &myria.StringColumnType{}},
	)
	require.Nil(t, err)
	require.Nil(t, s1.Equals(s2))

	// differing name
	s3, err := CreateSchema(
		[]string{"id", "label"},
		[]myria.ColumnType{&myria.Int64ColumnType{}, &myria.StringColumnType{}},
	)
	require.Nil(t, err)
	require.NotNil(t, s1.Equals(s3))

	// differing type
	s4, err := CreateSchema(
		[]string{"id", "name"},
		[]myria.ColumnType{&myria.Int32ColumnType{}, &myria.StringColumnType{}},
	)
	require.Nil(t, err)
	require.NotNil(t, s1.Equals(s4))

	// differing column count
	s5, err := CreateSchema([]string{"id"}, []myria.ColumnType{&myria.Int64ColumnType{}})
	require.Nil(t, err)
	require.NotNil(t, s1.Equals(s5))
}

func TestSchemaProject(t *testing.T) {
	s, err := CreateSchema(
		[]string{"id", "name", "score"},
		[]myria.ColumnType{&myria.Int64ColumnType{}, &myria.StringColumnType{}, &myria.Float64ColumnType{}},
	)
	require.Nil(t, err)
	p, err := s.Project([]int{2, 0})
	require.Nil(t, err)
	require.Equal(t, 2, p.NumColumns())
	require.Equal(t, "score", p.ColumnName(0))
	require.Equal(t, "id", p.ColumnName(1))

	_, err = s.Project([]int{3})
	require.NotNil(t, err)
	_, ok := err.(errors.ColumnOutOfBoundsError)
	require.True(t, ok)
}
