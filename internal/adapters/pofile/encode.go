// Package pofile writes and reads the gettext PO/POT files produced by the
// translation extractor.
package pofile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"relaygeo/internal/domain"
)

var escaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\t", `\t`,
)

func quote(s string) string { return `"` + escaper.Replace(s) + `"` }

// Encode writes c as a PO file. The header carries no timestamps so the output
// depends on the catalog only.
func Encode(w io.Writer, c domain.Catalog) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, `msgid ""`)
	fmt.Fprintln(bw, `msgstr ""`)
	fmt.Fprintln(bw, quote("Content-Type: text/plain; charset=UTF-8\n"))
	fmt.Fprintln(bw, quote("Content-Transfer-Encoding: 8bit\n"))
	if c.Language != "" {
		fmt.Fprintln(bw, quote("Language: "+c.Language+"\n"))
	}
	for _, e := range c.Entries {
		fmt.Fprintln(bw)
		if e.Comment != "" {
			fmt.Fprintf(bw, "#. %s\n", e.Comment)
		}
		fmt.Fprintf(bw, "msgid %s\n", quote(e.MsgID))
		fmt.Fprintf(bw, "msgstr %s\n", quote(e.MsgStr))
	}
	return bw.Flush()
}

// WriteFile encodes c to path, creating parent directories.
func WriteFile(path string, c domain.Catalog) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, c); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
