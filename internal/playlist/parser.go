package playlist

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"
)

const maxLineSize = 1 << 20 // 1 MiB per line

// DefaultCategory is assigned when a metadata line has no group-title.
const DefaultCategory = "Outros"

// Entry is one raw playlist record: a metadata line paired with its URL.
type Entry struct {
	Name     string
	Category string
	Logo     string
	URL      string
}

var (
	groupTitleRe = regexp.MustCompile(`group-title="([^"]*)"`)
	tvgLogoRe    = regexp.MustCompile(`tvg-logo="([^"]*)"`)
)

// pending holds the metadata carried between an #EXTINF line and its URL
// line. It is scoped to one pass over one file.
type pending struct {
	name     string
	category string
	logo     string
}

func (p *pending) reset() {
	*p = pending{}
}

func (p *pending) set() bool {
	return p.name != ""
}

// ParseFile reads and parses one playlist file.
func ParseFile(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Parse(file)
}

// Parse scans playlist text into entries. A metadata line with no title, a
// URL line with no pending metadata, and every other unrecognized line are
// skipped. URL lines ending in .ts are live-stream leftovers: they reset the
// pending state without yielding an entry.
func Parse(r io.Reader) ([]Entry, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, maxLineSize)

	var entries []Entry
	var cur pending
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "#EXTINF:") {
			cur = parseMetadata(line)
			continue
		}

		if strings.HasPrefix(line, "http") && cur.set() {
			if strings.HasSuffix(strings.ToLower(line), ".ts") {
				cur.reset()
				continue
			}
			entries = append(entries, Entry{
				Name:     cur.name,
				Category: cur.category,
				Logo:     cur.logo,
				URL:      line,
			})
			cur.reset()
		}
	}
	return entries, sc.Err()
}

func parseMetadata(line string) pending {
	var cur pending

	cur.category = DefaultCategory
	if m := groupTitleRe.FindStringSubmatch(line); m != nil && m[1] != "" {
		cur.category = m[1]
	}
	if m := tvgLogoRe.FindStringSubmatch(line); m != nil {
		cur.logo = m[1]
	}
	if i := strings.LastIndex(line, ","); i >= 0 {
		cur.name = strings.TrimSpace(line[i+1:])
	}
	return cur
}
