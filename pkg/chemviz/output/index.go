package output

import (
	"bytes"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// IndexFile is the name of the generated index page.
const IndexFile = "index.html"

// TimeLayout formats the last-modified time of an index entry.
const TimeLayout = "2006-01-02 15:04"

// IndexOptions configures index page generation. Now and Location are
// injected so that output is reproducible.
type IndexOptions struct {
	// SiteDir holds the pages to list; the index is written there.
	SiteDir string
	// Title names the repository in the page heading.
	Title string
	// Now provides the cache-busting version. Defaults to time.Now.
	Now func() time.Time
	// Location is the zone of the displayed times. Defaults to UTC.
	Location *time.Location
}

// IndexEntry is one listed page.
type IndexEntry struct {
	File     string
	Display  string
	Modified string
}

// IndexGroup gathers the pages sharing a display-name prefix.
type IndexGroup struct {
	Prefix  string
	Entries []IndexEntry
}

// ScanSite lists the HTML pages of dir other than the index, sorted by
// file name and grouped by the first word of their display name.
// Groups keep the order of their first page.
func ScanSite(dir string, loc *time.Location) ([]IndexGroup, error) {
	if loc == nil {
		loc = time.UTC
	}
	matches, err := filepath.Glob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		if name := filepath.Base(m); name != IndexFile {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var groups []IndexGroup
	pos := make(map[string]int)
	for _, name := range names {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		display := strings.TrimSuffix(strings.ReplaceAll(name, "_", " "), ".html")
		prefix, _, _ := strings.Cut(display, " ")

		i, ok := pos[prefix]
		if !ok {
			i = len(groups)
			pos[prefix] = i
			groups = append(groups, IndexGroup{Prefix: prefix})
		}
		groups[i].Entries = append(groups[i].Entries, IndexEntry{
			File:     name,
			Display:  display,
			Modified: info.ModTime().In(loc).Format(TimeLayout),
		})
	}
	return groups, nil
}

var indexTemplate = template.Must(template.New(IndexFile).Parse(`<!DOCTYPE html>
<html>
	<head>
		<meta charset="UTF-8">
		<meta http-equiv="cache-control" content="no-cache, must-revalidate, post-check=0, pre-check=0" />
		<meta http-equiv="cache-control" content="max-age=0" />
		<meta http-equiv="expires" content="0" />
		<meta http-equiv="expires" content="Tue, 01 Jan 1980 1:00:00 GMT" />
		<meta http-equiv="pragma" content="no-cache" />
		<title>Available Pages for {{.Title}} repo</title>
		<link rel="shortcut icon" type="image/x-icon" href="favicon.ico">
		<link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css" rel="stylesheet" integrity="sha384-QWTKZyjpPEjISv5WaRU9OFeRpok6YctnYmDr5pNlyT2bRjXh0JMhjY6hW+ALEwIH" crossorigin="anonymous">
		<script src="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/js/bootstrap.bundle.min.js" integrity="sha384-YvpcrYf0tY3lHB60NNkmXc5s9fDVZLESaAA55NDzOxhy9GkcIdslK1eN7N6jIeHz" crossorigin="anonymous"></script>
		<script>
			function filterList() {
				let input = document.getElementById('searchInput').value.toLowerCase();
				let items = document.querySelectorAll('.list-group-item');
				let tabs = document.querySelectorAll('.nav-link');
				let tabContents = document.querySelectorAll('.tab-pane');
				let foundInTabs = {};
				let hasGlobalMatch = false;

				items.forEach(item => {
					let parentTab = item.closest('.tab-pane').id;
					if (item.textContent.toLowerCase().includes(input)) {
						item.style.display = '';
						foundInTabs[parentTab] = true;
						hasGlobalMatch = true;
					} else {
						item.style.display = 'none';
					}
				});

				let firstVisibleTab = null;
				tabs.forEach(tab => {
					let target = tab.getAttribute('data-bs-target').substring(1);
					let pane = document.getElementById(target);
					if (foundInTabs[target]) {
						tab.style.display = '';
						pane.style.display = '';
						if (!firstVisibleTab) {
							firstVisibleTab = tab;
						}
					} else {
						tab.style.display = 'none';
						pane.style.display = 'none';
					}
				});

				if (!hasGlobalMatch) {
					tabs.forEach(tab => (tab.style.display = 'none'));
					tabContents.forEach(pane => (pane.style.display = 'none'));
				} else if (firstVisibleTab) {
					new bootstrap.Tab(firstVisibleTab).show();
				}
			}
		</script>
	</head>
	<body>
		<div class="container mt-5">
			<h2 class="mb-4">Available Pages for {{.Title}} repo</h2>
			<input type="text" id="searchInput" class="form-control mb-3" onkeyup="filterList()" placeholder="Search pages...">
			<ul class="nav nav-tabs" id="navTabs" role="tablist">
{{- range $i, $g := .Groups}}
				<li class="nav-item" role="presentation">
					<button class="nav-link{{if eq $i 0}} active{{end}}" id="{{$g.Prefix}}-tab" data-bs-toggle="tab" data-bs-target="#{{$g.Prefix}}" type="button" role="tab" aria-controls="{{$g.Prefix}}" aria-selected="{{if eq $i 0}}true{{else}}false{{end}}">
						{{$g.Prefix}}
					</button>
				</li>
{{- end}}
			</ul>
			<div class="tab-content mt-3" id="navTabContent">
{{- range $i, $g := .Groups}}
				<div class="tab-pane fade{{if eq $i 0}} show active{{end}}" id="{{$g.Prefix}}" role="tabpanel" aria-labelledby="{{$g.Prefix}}-tab">
					<div class="list-group">
{{- range $g.Entries}}
						<a href="{{.File}}?v={{$.Version}}" class="list-group-item list-group-item-action d-flex justify-content-between align-items-center">
							{{.Display}}
							<small class="text-muted">{{.Modified}}</small>
						</a>
{{- end}}
					</div>
				</div>
{{- end}}
			</div>
		</div>
	</body>
</html>
`))

// RenderIndex renders the index page for groups.
func RenderIndex(opts IndexOptions, groups []IndexGroup) ([]byte, error) {
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	var buf bytes.Buffer
	err := indexTemplate.Execute(&buf, struct {
		Title   string
		Version int64
		Groups  []IndexGroup
	}{
		Title:   opts.Title,
		Version: now().Unix(),
		Groups:  groups,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteIndex scans the site directory and writes its index page.
func WriteIndex(opts IndexOptions) (string, error) {
	groups, err := ScanSite(opts.SiteDir, opts.Location)
	if err != nil {
		return "", err
	}
	data, err := RenderIndex(opts, groups)
	if err != nil {
		return "", err
	}
	path := filepath.Join(opts.SiteDir, IndexFile)
	if err := WriteFiles(File{Path: path, Data: data}); err != nil {
		return "", err
	}
	return path, nil
}
