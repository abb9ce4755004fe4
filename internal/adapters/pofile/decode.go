package pofile

import (
	"bufio"
	"io"
	"os"
	"strings"

	"relaygeo/internal/domain"
)

var unescaper = strings.NewReplacer(
	`\\`, `\`,
	`\"`, `"`,
	`\n`, "\n",
	`\t`, "\t",
)

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		s = s[1 : len(s)-1]
	}
	return unescaper.Replace(s)
}

// Decode reads entries in file order. The header entry is skipped except for
// its Language field. Multi-line strings are joined; plural forms are not
// supported.
func Decode(r io.Reader) (domain.Catalog, error) {
	var (
		c       domain.Catalog
		cur     domain.TranslationEntry
		comment []string
		target  *string
		started bool
	)
	flush := func() {
		if !started {
			return
		}
		cur.Comment = strings.Join(comment, " ")
		if cur.MsgID == "" {
			for _, line := range strings.Split(cur.MsgStr, "\n") {
				if v, ok := strings.CutPrefix(line, "Language:"); ok {
					c.Language = strings.TrimSpace(v)
				}
			}
		} else {
			c.Entries = append(c.Entries, cur)
		}
		cur, comment, target, started = domain.TranslationEntry{}, nil, nil, false
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
			target = nil
		case strings.HasPrefix(line, "#."):
			// extracted comments open the next entry
			flush()
			comment = append(comment, strings.TrimSpace(line[2:]))
		case strings.HasPrefix(line, "#"):
			// other comment kinds are not carried
		case strings.HasPrefix(line, "msgid "):
			flush()
			started = true
			cur.MsgID = unquote(line[len("msgid "):])
			target = &cur.MsgID
		case strings.HasPrefix(line, "msgstr "):
			cur.MsgStr = unquote(line[len("msgstr "):])
			target = &cur.MsgStr
		case strings.HasPrefix(line, "msg"):
			// msgid_plural, msgstr[N], msgctxt: not carried
			target = nil
		case strings.HasPrefix(line, `"`) && target != nil:
			*target += unquote(line)
		}
	}
	flush()
	return c, sc.Err()
}

func ReadFile(path string) (domain.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Catalog{}, err
	}
	defer f.Close()
	return Decode(f)
}
