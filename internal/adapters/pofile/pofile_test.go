package pofile_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leonelquinteros/gotext"

	"relaygeo/internal/adapters/pofile"
	"relaygeo/internal/domain"
)

func sample() domain.Catalog {
	return domain.Catalog{
		Language: "es",
		Entries: []domain.TranslationEntry{
			{MsgID: "Wien", MsgStr: "Viena", Comment: "at vie"},
			{MsgID: "Los Angeles, CA", MsgStr: "Los Ángeles, CA", Comment: "us lax"},
			{MsgID: `Say "hi"`, MsgStr: "", Comment: "xx yy"},
		},
	}
}

func TestEncode_Layout(t *testing.T) {
	var buf bytes.Buffer
	if err := pofile.Encode(&buf, sample()); err != nil {
		t.Fatalf("encode: %v", err)
	}
	out := buf.String()
	want := "\n#. at vie\nmsgid \"Wien\"\nmsgstr \"Viena\"\n"
	if !strings.Contains(out, want) {
		t.Fatalf("missing entry block %q in:\n%s", want, out)
	}
	if !strings.Contains(out, `"Language: es\n"`) {
		t.Fatalf("missing language header:\n%s", out)
	}
	if !strings.Contains(out, `msgid "Say \"hi\""`) {
		t.Fatalf("quotes not escaped:\n%s", out)
	}
}

func TestEncode_TemplateHasNoLanguage(t *testing.T) {
	var buf bytes.Buffer
	if err := pofile.Encode(&buf, domain.Catalog{Entries: []domain.TranslationEntry{{MsgID: "Malmo", Comment: "se mma"}}}); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if strings.Contains(buf.String(), "Language:") {
		t.Fatalf("template must not carry a language:\n%s", buf.String())
	}
}

func TestEncode_ReadableByGettext(t *testing.T) {
	var buf bytes.Buffer
	if err := pofile.Encode(&buf, sample()); err != nil {
		t.Fatalf("encode: %v", err)
	}
	po := gotext.NewPo()
	po.Parse(buf.Bytes())

	if got := po.Get("Wien"); got != "Viena" {
		t.Fatalf("Wien: %q", got)
	}
	if got := po.Get("Los Angeles, CA"); got != "Los Ángeles, CA" {
		t.Fatalf("Los Angeles: %q", got)
	}
	// untranslated entries fall back to the msgid
	if got := po.Get(`Say "hi"`); got != `Say "hi"` {
		t.Fatalf("untranslated: %q", got)
	}
}

func TestWriteFileThenReadFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "es", "relay-locations.po")
	if err := pofile.WriteFile(p, sample()); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := pofile.ReadFile(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if diff := cmp.Diff(sample(), got); diff != "" {
		t.Fatalf("catalog mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_MultilineAndForeignComments(t *testing.T) {
	in := `# translator note
msgid ""
msgstr ""
"Language: sv\n"

#. se got
#: somewhere.ts:1
msgid "Gothen"
"burg"
msgstr "Göte"
"borg"
`
	got, err := pofile.Decode(strings.NewReader(in))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := domain.Catalog{
		Language: "sv",
		Entries:  []domain.TranslationEntry{{MsgID: "Gothenburg", MsgStr: "Göteborg", Comment: "se got"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("catalog mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_PluralLinesDoNotLeakIntoMsgID(t *testing.T) {
	in := `msgid "a"
msgid_plural "as"
msgstr[0] "x"
"tail"
`
	got, err := pofile.Decode(strings.NewReader(in))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Entries) != 1 || got.Entries[0].MsgID != "a" || got.Entries[0].MsgStr != "" {
		t.Fatalf("unexpected entries: %+v", got.Entries)
	}
}
