package render

// pageTemplate is the html/template for the tracker page.
const pageTemplate = `<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
</head>
<body>
  <nav class="navbar" id="navbar">
    <a class="logo" href="/?goto=home">{{.Title}}</a>
    <a class="menu-toggle" id="menuToggle" href="{{.ToggleHref}}" aria-label="Toggle menu">&#9776;</a>
    <ul class="nav-links{{if .Page.Menu.Active}} active{{end}}" id="navLinks">
      {{range .Sections}}<li><a href="/?goto={{.}}">{{title .}}</a></li>
      {{end}}
    </ul>
  </nav>

  <section id="home" class="hero">
    <h1>{{.Title}}</h1>
    <p>Browse the latest commits of any public GitHub repository.</p>
  </section>

  <section id="tracker">
    <form id="repoForm" method="post" action="/commits">
      <input type="text" id="username" name="username" placeholder="GitHub username" value="{{.Page.Lookup.Owner}}">
      <input type="text" id="repository" name="repository" placeholder="Repository name" value="{{.Page.Lookup.Repo}}">
      <button type="submit">Get Commits</button>
    </form>
    <div id="loading" class="loading"{{if not .Page.Loading.Visible}} hidden{{end}}>Loading commits...</div>
    <div id="error" class="error"{{if not .Page.Error.Visible}} hidden{{end}}>{{.Page.Error.Text}}</div>
    <div id="commits">
      {{with .Page.Commits}}
      {{if .Notice}}<p class="error">{{.Notice}}</p>{{end}}
      {{if .Heading}}<h2>{{.Heading}}</h2>{{end}}
      {{range .Cards}}
      <div class="commit-item">
        <div class="commit-message">{{.Message}}</div>
        <div class="commit-meta">
          <span class="commit-author">By: {{.Author}}</span>
          <span class="commit-date">{{.Date}} at {{.Time}}</span>
        </div>
        <div class="commit-sha">SHA: {{.ShortSHA}}</div>
      </div>
      {{end}}
      {{end}}
    </div>
  </section>

  <section id="about">
    <h2>About</h2>
    <p>Commits are read from the public GitHub REST API without authentication.</p>
  </section>

  <section id="contact">
    <h2>Contact</h2>
    <div id="contactSuccess" class="success-message"{{if not .Page.Contact.Success.Visible}} hidden{{end}}>{{.Page.Contact.Success.Text}}</div>
    <div id="contactError" class="error-message"{{if not .Page.Contact.Failure.Visible}} hidden{{end}}>{{.Page.Contact.Failure.Text}}</div>
    <form id="contactForm" method="post" action="/contact">
      {{range $name, $values := .Page.Hidden}}{{range $values}}<input type="hidden" name="{{$name}}" value="{{.}}">{{end}}{{end}}
      <input type="text" name="name" placeholder="Your name" value="{{.Page.Contact.Value "name"}}" required>
      <input type="email" name="email" placeholder="Your email" value="{{.Page.Contact.Value "email"}}" required>
      <input type="text" name="subject" placeholder="Subject" value="{{.Page.Contact.Value "subject"}}">
      <textarea name="message" placeholder="Your message" required>{{.Page.Contact.Value "message"}}</textarea>
      <button type="submit" id="contactSubmitBtn"{{if .Page.Contact.Submit.Disabled}} disabled{{end}}>{{.Page.Contact.Submit.Label}}</button>
    </form>
  </section>
  {{with .Page.Scroll}}
  <script>document.getElementById({{.Target}}).scrollIntoView({behavior: {{if .Smooth}}"smooth"{{else}}"auto"{{end}}, block: {{.Block}}});</script>
  {{end}}
</body>
</html>`
