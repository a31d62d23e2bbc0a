package xpgx

import (
	"reflect"
	"testing"
	"time"
)

type base struct {
	ID        string    `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}

type row struct {
	base
	Name    string `db:"name"`
	Ignored string `db:"-"`
	private string `db:"private"`
	NoTag   string
}

func TestFieldsByTag(t *testing.T) {
	got := fieldsByTag(reflect.TypeOf(row{}))

	want := map[string][]int{
		"id":         {0, 0},
		"created_at": {0, 1},
		"name":       {1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected field index\nwant: %v\ngot:  %v", want, got)
	}
}
