package csvio

import (
	"os"
	"path/filepath"
	"testing"

	"bank_reviews/internal/domain"
)

func pint(n int) *int       { return &n }
func pstr(s string) *string { return &s }

func TestRawRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cbe.csv")
	in := []domain.RawReview{
		{ReviewID: "r1", Text: "Great APP!!", Rating: pint(5), Date: "2024-03-14", AppID: "cbe", BankName: "CBE", UserName: pstr("abebe"), ThumbsUp: pint(3), Source: "google_play"},
		{ReviewID: "r2", Text: "", Rating: nil, Date: "", AppID: "cbe", BankName: "CBE", Source: "google_play"},
	}
	if err := WriteRaw(path, in); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ReadRaw(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 rows, got %d", len(got))
	}
	if got[0].Rating == nil || *got[0].Rating != 5 || got[0].Text != "Great APP!!" {
		t.Fatalf("row 0 mangled: %+v", got[0])
	}
	if got[1].Rating != nil || got[1].UserName != nil {
		t.Fatalf("empty fields should come back nil: %+v", got[1])
	}
}

func TestReadRaw_MissingFile(t *testing.T) {
	if _, err := ReadRaw(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestReadRaw_BadHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(path, []byte("foo,bar\n1,2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadRaw(path); err == nil {
		t.Fatal("expected header mismatch error")
	}
}

func TestWriteClean_OverwriteIsDeterministic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clean.csv")
	rows := []domain.CleanReview{
		{Text: "great app!!", Rating: 5, Date: "2024-03-14", AppID: "cbe", TextLength: 11},
		{Text: "slow transfers, needs work", Rating: 2, Date: "2024-02-01", AppID: "boa", TextLength: 26},
	}
	if err := WriteClean(path, rows); err != nil {
		t.Fatalf("first write: %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := WriteClean(path, rows); err != nil {
		t.Fatalf("second write: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Fatal("rerun produced different bytes for identical input")
	}
	if string(first[:len("text,rating,date,app_id,text_length")]) != "text,rating,date,app_id,text_length" {
		t.Fatalf("unexpected header: %s", first)
	}
}

func TestCleanRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clean.csv")
	rows := []domain.CleanReview{
		{Text: "text, with commas \"and quotes\"", Rating: 4, Date: "2024-01-05", AppID: "cbe", TextLength: 30},
	}
	if err := WriteClean(path, rows); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ReadClean(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != 1 || got[0] != rows[0] {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestWriteClean_UnwritableDestination(t *testing.T) {
	dir := t.TempDir()
	blocked := filepath.Join(dir, "ro")
	if err := os.MkdirAll(blocked, 0o555); err != nil {
		t.Fatal(err)
	}
	err := WriteClean(filepath.Join(blocked, "out.csv"), nil)
	if err == nil {
		t.Skip("running as root, permission bits not enforced")
	}
}
