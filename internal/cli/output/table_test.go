package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/yndnr/minidb-go/internal/core/domain"
)

func TestRecordTable_UnionHeaders(t *testing.T) {
	table := RecordTable(sampleSet().Records)

	wantHeaders := []string{"#", "name", "age", "role"}
	if strings.Join(table.Headers, ",") != strings.Join(wantHeaders, ",") {
		t.Errorf("Headers = %v, want %v", table.Headers, wantHeaders)
	}
	if got := table.Rows[0][3]; got != missingCell {
		t.Errorf("missing field cell = %q, want %q", got, missingCell)
	}
	if got := table.Rows[1][0]; got != "2" {
		t.Errorf("row number = %q, want 2", got)
	}
}

func TestTableFormatter_RecordSet(t *testing.T) {
	got := render(t, &TableFormatter{}, sampleSet())
	want := "#  name  age  role\n" +
		"1  John  25   -\n" +
		"2  Jane  30   admin\n"
	if got != want {
		t.Errorf("table =\n%s\nwant\n%s", got, want)
	}
}

func TestTableFormatter_NoHeaders(t *testing.T) {
	got := render(t, &TableFormatter{NoHeaders: true}, sampleSet())
	if strings.Contains(got, "name") {
		t.Errorf("header row rendered with NoHeaders:\n%s", got)
	}
	if !strings.Contains(got, "Jane") {
		t.Errorf("missing row data:\n%s", got)
	}
}

func TestTableFormatter_CollectionList(t *testing.T) {
	list := CollectionList{{Name: "orders", Records: 1}, {Name: "users", Records: 12}}
	got := render(t, &TableFormatter{}, list)
	want := "COLLECTION  RECORDS\n" +
		"orders      1\n" +
		"users       12\n"
	if got != want {
		t.Errorf("table =\n%s\nwant\n%s", got, want)
	}

	if got := render(t, &TableFormatter{}, CollectionList{}); got != "No collections.\n" {
		t.Errorf("empty list = %q", got)
	}
}

func TestTableFormatter_SingleRecord(t *testing.T) {
	got := render(t, &TableFormatter{}, domain.RecordOf("sku", "A-1"))
	if got != "#  sku\n1  A-1\n" {
		t.Errorf("table = %q", got)
	}
}

func TestTableFormatter_Unsupported(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TableFormatter{}).Format(&buf, 42); err == nil {
		t.Error("Format(int) succeeded, want error")
	}
}

func TestTable_Render(t *testing.T) {
	table := &Table{Headers: []string{"KEY", "VALUE"}}
	table.AddRow("path", "data/db.json")

	var buf bytes.Buffer
	if err := table.Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := buf.String(); got != "KEY   VALUE\npath  data/db.json\n" {
		t.Errorf("Render = %q", got)
	}
}
