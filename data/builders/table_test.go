package builders_test

import (
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/cwooldridge/csla/data"
	"github.com/cwooldridge/csla/data/builders"
)

func TestTableFromRows(t *testing.T) {
	r := require.New(t)

	db, mock, err := sqlmock.New()
	r.NoError(err)
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnRows(
		sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "ada").
			AddRow(2, "alan"),
	)

	rows, err := db.Query("SELECT id, name FROM people")
	r.NoError(err)
	defer rows.Close()

	table, err := builders.TableFromRows("people", rows)
	r.NoError(err)

	r.Equal(data.Header{"id", "name"}, table.Header())
	r.Equal([]data.Row{
		{"1", "ada"},
		{"2", "alan"},
	}, table.Rows())

	r.NoError(mock.ExpectationsWereMet())
}

func TestTableFromRows_TypeProcessor(t *testing.T) {
	r := require.New(t)

	db, mock, err := sqlmock.New()
	r.NoError(err)
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnRows(
		sqlmock.NewRowsWithColumnDefinition(
			sqlmock.NewColumn("id").OfType("INT", 0),
			sqlmock.NewColumn("raw").OfType("BLOB", []byte{}),
		).
			AddRow(1, []byte("bytes")),
	)

	rows, err := db.Query("SELECT id, raw FROM blobs")
	r.NoError(err)
	defer rows.Close()

	table, err := builders.TableFromRows("blobs", rows,
		builders.WithTypeProcessor("blob", func(any) any { return "<binary>" }),
	)
	r.NoError(err)

	r.Equal([]data.Row{{"1", "<binary>"}}, table.Rows())
}

func TestTableFromRows_IsFillSource(t *testing.T) {
	r := require.New(t)

	db, mock, err := sqlmock.New()
	r.NoError(err)
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnRows(
		sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "ada"),
	)

	rows, err := db.Query("SELECT id, name FROM people")
	r.NoError(err)
	defer rows.Close()

	source, err := builders.TableFromRows("people", rows)
	r.NoError(err)

	ds := data.NewDataset("test")
	table, err := data.NewObjectAdapter().Fill(ds, source)
	r.NoError(err)

	r.Equal(data.Header{"id", "name"}, table.Header())
	r.Equal([]data.Row{{"1", "ada"}}, table.Rows())
}

func TestTableFromCSV(t *testing.T) {
	r := require.New(t)

	input := strings.Join([]string{
		"id,name",
		"1,ada",
		"2,alan,extra",
		"3",
	}, "\n")

	table, err := builders.TableFromCSV("people", strings.NewReader(input))
	r.NoError(err)

	r.Equal(data.Header{"id", "name"}, table.Header())
	r.Equal([]data.Row{
		{"1", "ada"},
		{"2", "alan"},
		{"3", ""},
	}, table.Rows())
}

func TestTableFromCSV_Empty(t *testing.T) {
	r := require.New(t)

	table, err := builders.TableFromCSV("empty", strings.NewReader(""))
	r.NoError(err)

	r.Empty(table.Header())
	r.Zero(table.Len())
}
