package site

// pageTemplate is the Go html/template for each pillar page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="light">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Pillar.Title}} — {{.SiteTitle}}</title>
  <link rel="stylesheet" href="{{.BasePath}}style.css">
</head>
<body>
  <div class="reading-progress"><div class="reading-progress-bar" id="reading-progress-bar"></div></div>
  <nav class="sidebar">
    <a class="site-title" href="{{.BasePath}}index.html">{{.SiteTitle}}</a>
    <ol class="section-list">
      {{range .Sections}}<li><a href="#{{.ID}}" data-section="{{.ID}}">{{.Title}}</a></li>
      {{end}}
    </ol>
  </nav>
  <main class="content">
    <header class="pillar-header">
      <span class="pillar-icon icon-{{.Pillar.Icon}}"></span>
      <h1>{{.Pillar.Title}}</h1>
      <p class="pillar-description">{{.Pillar.Description}}</p>
      <p class="pillar-meta">
        <span class="difficulty difficulty-{{.Pillar.Difficulty}}">{{.Pillar.DifficultyLabel}}</span>
        {{if .Pillar.ReadMinutes}}<span class="read-time">{{.Pillar.ReadMinutes}} min read</span>{{end}}
        {{with .Prereq}}<span class="prereq">Start with <a href="{{.Href}}">{{.Title}}</a></span>{{end}}
      </p>
    </header>
    {{if .Pillar.Stats}}
    <section class="stats">
      {{range .Pillar.Stats}}<div class="stat"><div class="stat-value">{{.Value}}</div><div class="stat-label">{{.Label}}</div></div>
      {{end}}
    </section>
    {{end}}
    {{range .Sections}}
    <section class="article-section" id="{{.ID}}">
      <h2>{{.Title}} <button class="bookmark" data-section="{{.ID}}" aria-label="Bookmark section">☆</button></h2>
      {{.HTML}}
      <button class="complete" data-section="{{.ID}}">Mark complete</button>
    </section>
    {{end}}
    {{if .Pillar.Related}}
    <section class="related">
      <h2>Related Resources</h2>
      <ul>
        {{range .Pillar.Related}}<li><a href="{{.URL}}" rel="noopener">{{.Title}}</a></li>
        {{end}}
      </ul>
    </section>
    {{end}}
    <nav class="pillar-nav">
      {{with .Previous}}<a class="prev" href="{{.Href}}">&larr; {{.Title}}</a>{{end}}
      {{with .Next}}<a class="next" href="{{.Href}}">{{.Title}} &rarr;</a>{{end}}
    </nav>
  </main>
  <script src="{{.BasePath}}script.js"></script>
</body>
</html>`

// indexTemplate lists every pillar in catalog order.
const indexTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="light">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.SiteTitle}}</title>
  <link rel="stylesheet" href="{{.BasePath}}style.css">
</head>
<body>
  <main class="content index">
    <h1>{{.SiteTitle}}</h1>
    <ol class="pillar-grid">
      {{range .Pillars}}<li class="pillar-card">
        <a href="{{.Href}}">
          <span class="pillar-icon icon-{{.Icon}}"></span>
          <h2>{{.ID}}. {{.Title}}</h2>
          <p>{{.Description}}</p>
          <span class="difficulty difficulty-{{.Difficulty}}">{{.DifficultyLabel}}</span>
        </a>
      </li>
      {{end}}
    </ol>
  </main>
</body>
</html>`

// cssContent is the stylesheet shared by every page.
const cssContent = `:root {
  --bg: #ffffff;
  --fg: #1f2933;
  --muted: #616e7c;
  --accent: #0b7a75;
  --card: #f5f7fa;
  --border: #e4e7eb;
}
* { box-sizing: border-box; }
body { margin: 0; font-family: -apple-system, "Segoe UI", Roboto, sans-serif; color: var(--fg); background: var(--bg); display: flex; }
a { color: var(--accent); }
.reading-progress { position: fixed; top: 0; left: 0; right: 0; height: 4px; background: var(--border); z-index: 10; }
.reading-progress-bar { height: 100%; width: 0; background: var(--accent); transition: width 0.1s; }
.sidebar { width: 260px; padding: 24px; border-right: 1px solid var(--border); position: sticky; top: 0; height: 100vh; overflow-y: auto; }
.site-title { font-weight: 700; text-decoration: none; display: block; margin-bottom: 16px; }
.section-list a.active { font-weight: 700; }
.content { flex: 1; max-width: 860px; padding: 32px 48px; }
.pillar-meta span { margin-right: 12px; color: var(--muted); font-size: 0.9em; }
.difficulty-1 { color: #2f8132; }
.difficulty-2 { color: #b7791f; }
.difficulty-3 { color: #c53030; }
.stats { display: flex; gap: 16px; margin: 24px 0; }
.stat { background: var(--card); border-radius: 8px; padding: 16px; flex: 1; }
.stat-value { font-size: 1.3em; font-weight: 700; }
.stat-label { color: var(--muted); font-size: 0.85em; }
.article-section { border-bottom: 1px solid var(--border); padding-bottom: 16px; }
.article-section.completed h2::after { content: " ✓"; color: var(--accent); }
.bookmark, .complete { background: none; border: 1px solid var(--border); border-radius: 4px; cursor: pointer; }
.bookmark.on { color: #d69e2e; }
table { border-collapse: collapse; }
th, td { border: 1px solid var(--border); padding: 6px 12px; }
pre { padding: 12px; border-radius: 6px; overflow-x: auto; }
.pillar-nav { display: flex; justify-content: space-between; margin-top: 48px; }
.pillar-nav .next { margin-left: auto; }
.pillar-grid { list-style: none; padding: 0; display: grid; grid-template-columns: repeat(auto-fill, minmax(240px, 1fr)); gap: 16px; }
.pillar-card a { display: block; background: var(--card); border-radius: 8px; padding: 16px; text-decoration: none; color: inherit; height: 100%; }
`

// jsContent keeps per-page reading state in memory: scroll progress, the
// active section, bookmarks and completed sections. Nothing is stored.
const jsContent = `(function() {
  var bar = document.getElementById('reading-progress-bar');
  var bookmarks = new Set();
  var completed = new Set();

  function scrollPercent() {
    var el = document.documentElement;
    var scrollable = el.scrollHeight - el.clientHeight;
    if (scrollable <= 0) return 0;
    return Math.min(100, Math.max(0, el.scrollTop / scrollable * 100));
  }

  function toggle(set, id) {
    if (set.has(id)) { set.delete(id); return false; }
    set.add(id); return true;
  }

  function updateActive() {
    var sections = document.querySelectorAll('.article-section');
    var active = null;
    sections.forEach(function(s) {
      if (s.getBoundingClientRect().top < window.innerHeight / 3) active = s.id;
    });
    document.querySelectorAll('.section-list a').forEach(function(a) {
      a.classList.toggle('active', a.dataset.section === active);
    });
  }

  window.addEventListener('scroll', function() {
    if (bar) bar.style.width = scrollPercent() + '%';
    updateActive();
  });

  document.querySelectorAll('.bookmark').forEach(function(btn) {
    btn.addEventListener('click', function() {
      var on = toggle(bookmarks, btn.dataset.section);
      btn.classList.toggle('on', on);
      btn.textContent = on ? '★' : '☆';
    });
  });

  document.querySelectorAll('.complete').forEach(function(btn) {
    btn.addEventListener('click', function() {
      var on = toggle(completed, btn.dataset.section);
      document.getElementById(btn.dataset.section).classList.toggle('completed', on);
      btn.textContent = on ? 'Completed' : 'Mark complete';
    });
  });

  updateActive();
})();
`
