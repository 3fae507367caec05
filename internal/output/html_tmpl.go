package output

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
:root {
  --bg: #fff; --fg: #1a1a2e; --card-bg: #f8f9fa; --border: #dee2e6;
  --table-alt: #f1f3f5; --muted: #6c757d; --accent: #0d6efd;
  --single: #0d6efd; --block: #fd7e14; --doc: #28a745;
}
@media (prefers-color-scheme: dark) {
  :root {
    --bg: #1a1a2e; --fg: #e9ecef; --card-bg: #16213e; --border: #495057;
    --table-alt: #0f3460; --muted: #adb5bd; --accent: #5b9aff;
    --single: #5b9aff; --block: #fd7e14; --doc: #4caf50;
  }
}
* { box-sizing: border-box; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: var(--bg); color: var(--fg); line-height: 1.5; padding: 1rem; max-width: 1100px; margin: 0 auto; }
header p { color: var(--muted); font-size: .875rem; }
.cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(120px, 1fr)); gap: .75rem; margin: 1rem 0 1.5rem; }
.card { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: .75rem; text-align: center; }
.card .value { font-size: 1.5rem; font-weight: 700; }
.card .label { font-size: .75rem; color: var(--muted); text-transform: uppercase; }
.kinds { display: flex; height: 10px; border-radius: 5px; overflow: hidden; margin-bottom: 1.5rem; }
.kind-SingleLineComment { background: var(--single); }
.kind-MultiLineComment { background: var(--block); }
.kind-JSDocComment { background: var(--doc); }
table { width: 100%; border-collapse: collapse; font-size: .8125rem; margin-bottom: 1rem; }
th, td { padding: .375rem .625rem; text-align: left; border-bottom: 1px solid var(--border); }
tr:nth-child(even) { background: var(--table-alt); }
code { font-size: .8125rem; }
</style>
</head>
<body>
<header>
<p>Generated {{.GeneratedAt}}</p>
</header>
<div class="cards">
  <div class="card"><div class="value">{{.Files}}</div><div class="label">Files</div></div>
  <div class="card"><div class="value">{{.Comments}}</div><div class="label">Comments</div></div>
  <div class="card"><div class="value">{{.MedianGrade}}</div><div class="label">Median grade</div></div>
  <div class="card"><div class="value">{{.Failed}}</div><div class="label">Failed</div></div>
</div>
{{if .Kinds}}<div class="kinds">{{range .Kinds}}<div class="kind-{{.Kind}}" style="width: {{printf "%.2f" .Percent}}%" title="{{.Kind}}: {{.Count}}"></div>{{end}}</div>{{end}}
<main>
{{.Body}}
</main>
</body>
</html>
`
