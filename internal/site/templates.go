package site

// pageTemplate is the Go html/template for the axes page.
const pageTemplate = `<!DOCTYPE html>
<html lang="ar" dir="rtl">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="{{.BasePath}}style.css">
</head>
<body id="body"{{if .Filtered}} class="filtered-mode"{{end}}
  data-live="{{if .Live}}1{{else}}0{{end}}"
  data-base="{{.BasePath}}"
  data-overlay-delay="{{.OverlayDelayMS}}"
  data-overlay-fade="{{.OverlayFadeMS}}"
  data-back-fade="{{.BackFadeMS}}"
  data-zoom="{{.ZoomMS}}"
  data-scroll-top-at="{{.ScrollTopAt}}"
  data-sticky-at="{{.StickyAt}}">
  {{if not .Filtered}}<div id="introOverlay"><h1 class="welcome">{{.Welcome}}</h1></div>{{end}}

  <header id="header">
    <h1 id="headerTitle"{{if .Filtered}} style="display:none"{{end}}>{{.Title}}</h1>
    {{if .Categories}}
    <select id="categoryFilter" aria-label="{{.Labels.CategoryPrompt}}">
      <option value="" data-href="{{.BasePath}}index.html">{{.Labels.CategoryPrompt}}</option>
      {{range .Categories}}<option value="{{.Value}}" data-href="{{$.BasePath}}{{.Href}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>
      {{end}}
    </select>
    {{end}}
  </header>

  <section class="intro" id="intro"{{if .Filtered}} style="display:none"{{end}}>
    {{if .IntroHeading}}<h2>{{.IntroHeading}}</h2>{{end}}
    {{if .IntroText}}<p>{{.IntroText}}</p>{{end}}
    <ul>
      {{range .IntroItems}}<li{{if .Target}} data-target="{{.Target}}"{{end}}>{{.Label}}</li>
      {{end}}
    </ul>
  </section>

  <main id="main"{{if .Filtered}} style="display:none"{{end}}>
    {{range .Sections}}
    <section id="{{.ID}}" data-region="section:{{.ID}}" data-category="{{.Category}}">
      {{if .Heading}}<h2>{{.Heading}}</h2>{{end}}
      <div class="cards">
        {{range .Cards}}<article class="card">
          <h3>{{.Title}}</h3>
          <div class="card-body">{{.HTML}}</div>
          {{if .Link}}<a class="card-link" href="{{.Link}}" target="_blank" rel="noopener">&larr;</a>{{end}}
        </article>
        {{end}}
      </div>
    </section>
    {{end}}
  </main>

  <div id="filteredView"{{if .Filtered}} class="fade-in" style="display:block"{{end}}>
    <h2 id="filteredTitle">{{if .Filtered}}{{.Filtered.Title}}{{end}}</h2>
    <div class="filtered-cards">
      {{if .Filtered}}{{range .Filtered.Cards}}<article class="card reveal" style="animation-delay: {{.DelayMS}}ms">
        <h3>{{.Title}}</h3>
        <div class="card-body">{{.HTML}}</div>
        {{if .Link}}<a class="card-link" href="{{.Link}}" target="_blank" rel="noopener">&larr;</a>{{end}}
      </article>
      {{end}}{{end}}
    </div>
  </div>

  <button id="backToMain" data-href="{{.BasePath}}index.html"{{if .Filtered}} style="display:block"{{end}}>{{.Labels.Back}}</button>
  <button id="scrollTopBtn">{{.Labels.ScrollTop}}</button>

  <div class="bg-anim-extra">
    {{range .Stars}}<span class="star" style="{{.}}"></span>{{end}}
  </div>

  <script src="{{.BasePath}}script.js"></script>
</body>
</html>
`

// cssContent is the stylesheet shared by every page.
const cssContent = `:root {
  --bg: #0b1020;
  --fg: #f2f4f8;
  --accent: #d4a84f;
  --card: rgba(255, 255, 255, 0.06);
}
* { box-sizing: border-box; }
body {
  margin: 0;
  font-family: "Tajawal", "Segoe UI", Tahoma, sans-serif;
  background: var(--bg);
  color: var(--fg);
  line-height: 1.7;
}
header {
  display: flex;
  align-items: center;
  justify-content: space-between;
  padding: 1.25rem 2rem;
  transition: background 0.3s, box-shadow 0.3s;
  z-index: 10;
}
header.sticky {
  position: sticky;
  top: 0;
  background: rgba(11, 16, 32, 0.92);
  box-shadow: 0 2px 12px rgba(0, 0, 0, 0.4);
}
#categoryFilter {
  background: var(--card);
  color: var(--fg);
  border: 1px solid var(--accent);
  border-radius: 8px;
  padding: 0.4rem 0.8rem;
}
.intro { padding: 1rem 2rem; }
.intro ul li { cursor: pointer; padding: 0.25rem 0; }
.intro ul li:hover { color: var(--accent); }
main section {
  margin: 2rem;
  padding: 1.5rem;
  border-radius: 14px;
  transition: transform 0.4s, box-shadow 0.4s;
}
main section.highlight { box-shadow: 0 0 0 2px var(--accent); }
main section.zoomed { transform: scale(1.02); }
.cards, .filtered-cards {
  display: grid;
  grid-template-columns: repeat(auto-fill, minmax(240px, 1fr));
  gap: 1rem;
}
.card {
  background: var(--card);
  border-radius: 12px;
  padding: 1rem 1.25rem;
}
.card.reveal {
  opacity: 0;
  transform: translateY(40px);
  animation: reveal 0.6s forwards;
}
@keyframes reveal {
  to { opacity: 1; transform: translateY(0); }
}
#introOverlay {
  position: fixed;
  inset: 0;
  display: flex;
  align-items: center;
  justify-content: center;
  background: var(--bg);
  z-index: 100;
  transition: opacity 1s;
}
#introOverlay.fade-out { opacity: 0; }
#filteredView { display: none; padding: 2rem; transition: opacity 0.4s; }
#filteredView.fade-in { opacity: 1; }
#filteredView.fade-out { opacity: 0; }
#backToMain, #scrollTopBtn {
  display: none;
  position: fixed;
  bottom: 1.5rem;
  border: none;
  border-radius: 999px;
  padding: 0.6rem 1.2rem;
  background: var(--accent);
  color: var(--bg);
  cursor: pointer;
  z-index: 20;
}
#backToMain { right: 1.5rem; }
#scrollTopBtn { left: 1.5rem; }
.bg-anim-extra {
  position: fixed;
  inset: 0;
  pointer-events: none;
  z-index: -1;
}
.star {
  position: absolute;
  width: 2px;
  height: 2px;
  border-radius: 50%;
  background: #fff;
  animation: twinkle 6s infinite ease-in-out;
}
@keyframes twinkle {
  0%, 100% { transform: scale(1); }
  50% { transform: scale(1.8); }
}
`

// jsContent drives the page. With data-live="1" it forwards events to the
// websocket shell and applies the commands it sends back; otherwise it runs
// the same behavior locally from the data attributes rendered into the page.
const jsContent = `(function () {
  var body = document.body;
  var data = body.dataset;
  var num = function (v, d) { var n = parseFloat(v); return isNaN(n) ? d : n; };
  var region = function (name) {
    if (name === "body") return body;
    if (name.indexOf("section:") === 0) return document.querySelector('[data-region="' + name + '"]');
    return document.getElementById(name);
  };

  function renderCards(cards) {
    var holder = document.querySelector("#filteredView .filtered-cards");
    if (!holder) return;
    holder.innerHTML = "";
    cards.forEach(function (c) {
      var el = document.createElement("article");
      el.className = "card reveal";
      el.style.animationDelay = c.delay_ms + "ms";
      var h = document.createElement("h3");
      h.textContent = c.title;
      var b = document.createElement("div");
      b.className = "card-body";
      b.innerHTML = c.html;
      el.appendChild(h);
      el.appendChild(b);
      holder.appendChild(el);
    });
  }

  function centerOn(el) {
    var y = el.getBoundingClientRect().top + window.scrollY - window.innerHeight / 2 + el.offsetHeight / 2;
    window.scrollTo({ top: y, behavior: "smooth" });
  }

  function apply(cmd) {
    var el = cmd.region ? region(cmd.region) : null;
    switch (cmd.op) {
      case "show": if (el) el.style.display = el.tagName === "BUTTON" || el.id === "filteredView" ? "block" : ""; break;
      case "hide": if (el) el.style.display = "none"; break;
      case "remove": if (el) el.remove(); break;
      case "add_class": if (el) el.classList.add.apply(el.classList, cmd.classes); break;
      case "remove_class": if (el) el.classList.remove.apply(el.classList, cmd.classes); break;
      case "set_text": if (el) el.textContent = cmd.text; break;
      case "set_value": if (el) el.value = cmd.value; break;
      case "scroll_to":
        if (cmd.target.top) window.scrollTo({ top: 0, behavior: "smooth" });
        else { var t = region(cmd.target.center); if (t) centerOn(t); }
        break;
      case "render_cards": renderCards(cmd.cards || []); break;
      case "error": console.warn("axes:", cmd.text); break;
    }
  }

  var filter = document.getElementById("categoryFilter");
  var back = document.getElementById("backToMain");
  var top = document.getElementById("scrollTopBtn");
  var header = document.getElementById("header");

  if (data.live === "1") {
    var proto = location.protocol === "https:" ? "wss://" : "ws://";
    var ws = new WebSocket(proto + location.host + "/ws");
    var send = function (ev) { if (ws.readyState === 1) ws.send(JSON.stringify(ev)); };
    ws.onmessage = function (m) { apply(JSON.parse(m.data)); };
    ws.onopen = function () { send({ type: "load" }); };
    document.querySelectorAll(".intro ul li").forEach(function (li) {
      li.addEventListener("click", function () { send({ type: "intro", label: li.textContent }); });
    });
    if (filter) filter.addEventListener("change", function () { send({ type: "category", value: filter.value }); });
    back.addEventListener("click", function () { send({ type: "back" }); });
    top.addEventListener("click", function () { send({ type: "scroll_top" }); });
    window.addEventListener("scroll", function () { send({ type: "scroll", y: window.scrollY }); });
    return;
  }

  var overlay = document.getElementById("introOverlay");
  window.addEventListener("load", function () {
    if (!overlay) return;
    setTimeout(function () {
      overlay.classList.add("fade-out");
      setTimeout(function () { overlay.remove(); }, num(data.overlayFade, 1000));
    }, num(data.overlayDelay, 2000));
  });

  var sections = document.querySelectorAll("main > section");
  document.querySelectorAll(".intro ul li[data-target]").forEach(function (li) {
    li.addEventListener("click", function () {
      var section = document.getElementById(li.dataset.target);
      if (!section) return;
      centerOn(section);
      sections.forEach(function (s) { s.classList.remove("highlight"); });
      section.classList.add("highlight", "zoomed");
      setTimeout(function () { section.classList.remove("zoomed"); }, num(data.zoom, 1000));
    });
  });

  if (filter) filter.addEventListener("change", function () {
    var opt = filter.options[filter.selectedIndex];
    if (opt && opt.dataset.href) location.href = opt.dataset.href;
  });

  back.addEventListener("click", function () {
    var view = document.getElementById("filteredView");
    view.classList.remove("fade-in");
    view.classList.add("fade-out");
    setTimeout(function () { location.href = back.dataset.href; }, num(data.backFade, 400));
  });

  top.addEventListener("click", function () { window.scrollTo({ top: 0, behavior: "smooth" }); });

  window.addEventListener("scroll", function () {
    top.style.display = window.scrollY > num(data.scrollTopAt, 300) ? "block" : "none";
    if (window.scrollY > num(data.stickyAt, 80)) header.classList.add("sticky");
    else header.classList.remove("sticky");
  });
})();
`

// Stylesheet returns the CSS shared by every page.
func Stylesheet() string { return cssContent }

// Script returns the page script.
func Script() string { return jsContent }
