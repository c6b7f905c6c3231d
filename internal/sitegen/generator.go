package sitegen

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/juzbuild/juzbuild/internal/model"
)

// Generator writes a minimal static site template to a local working
// directory, parameterized entirely by the provisioning request. It makes
// no network calls; any filesystem error aborts generation with the raw
// error.
type Generator struct {
	workDir string
}

func NewGenerator(workDir string) *Generator {
	return &Generator{workDir: workDir}
}

// Result describes the generated tree.
type Result struct {
	Dir   string   `json:"dir"`
	Files []string `json:"files"`
}

// Generate writes the full template tree for the request and returns the
// directory plus the relative paths of every file written, in a stable
// order.
func (g *Generator) Generate(req model.ProvisioningRequest) (*Result, error) {
	dir := filepath.Join(g.workDir, req.Subdomain)

	for _, sub := range []string{"pages", "components", "styles", "data", filepath.Join("public", "images")} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return nil, fmt.Errorf("create template dir: %w", err)
		}
	}

	colors := ResolveBrandColors(req.BrandColors)
	properties := SampleProperties(req.PropertyTypes)

	propertiesJSON, err := json.MarshalIndent(properties, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal sample properties: %w", err)
	}

	files := []struct {
		path    string
		content string
	}{
		{"package.json", packageJSON(req)},
		{"next.config.js", nextConfig()},
		{filepath.Join("pages", "_app.js"), appWrapper()},
		{filepath.Join("pages", "_document.js"), documentWrapper()},
		{filepath.Join("pages", "index.js"), indexPage(req)},
		{filepath.Join("components", "Header.js"), headerComponent(req)},
		{filepath.Join("components", "Footer.js"), footerComponent(req)},
		{filepath.Join("styles", "globals.css"), globalsCSS(colors)},
		{filepath.Join("data", "properties.json"), string(propertiesJSON) + "\n"},
	}

	result := &Result{Dir: dir}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f.path), []byte(f.content), 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", f.path, err)
		}
		result.Files = append(result.Files, filepath.ToSlash(f.path))
	}

	return result, nil
}

func packageJSON(req model.ProvisioningRequest) string {
	name := strings.ToLower(strings.ReplaceAll(req.Subdomain, " ", "-"))
	return fmt.Sprintf(`{
  "name": "%s-website",
  "version": "0.1.0",
  "private": true,
  "scripts": {
    "dev": "next dev",
    "build": "next build",
    "start": "next start"
  },
  "dependencies": {
    "next": "14.2.3",
    "react": "18.3.1",
    "react-dom": "18.3.1"
  }
}
`, name)
}

func nextConfig() string {
	return `/** @type {import('next').NextConfig} */
const nextConfig = {
  reactStrictMode: true,
};

module.exports = nextConfig;
`
}

func appWrapper() string {
	return `import '../styles/globals.css';

export default function App({ Component, pageProps }) {
  return <Component {...pageProps} />;
}
`
}

func documentWrapper() string {
	return `import { Html, Head, Main, NextScript } from 'next/document';

export default function Document() {
  return (
    <Html lang="en">
      <Head />
      <body>
        <Main />
        <NextScript />
      </body>
    </Html>
  );
}
`
}

func indexPage(req model.ProvisioningRequest) string {
	return fmt.Sprintf(`import Header from '../components/Header';
import Footer from '../components/Footer';
import properties from '../data/properties.json';

export default function Home() {
  const featured = properties.filter((p) => p.featured).slice(0, 3);
  return (
    <>
      <Header />
      <main>
        <section className="hero">
          <h1>%s</h1>
          <p>%s</p>
        </section>
        <section className="featured">
          <h2>Featured Properties</h2>
          <div className="grid">
            {featured.map((p) => (
              <article key={p.title} className="card">
                <h3>{p.title}</h3>
                <p>{p.type} &middot; {p.beds} bd &middot; {p.baths} ba &middot; {p.sqft} sqft</p>
                <p className="price">${p.price.toLocaleString()}</p>
              </article>
            ))}
          </div>
        </section>
      </main>
      <Footer />
    </>
  );
}
`, req.CompanyName, req.Tagline)
}

func headerComponent(req model.ProvisioningRequest) string {
	var links strings.Builder
	for _, slug := range req.IncludedPages {
		href := "/" + strings.ToLower(slug)
		if strings.EqualFold(slug, "home") {
			href = "/"
		}
		fmt.Fprintf(&links, "        <a href=\"%s\">%s</a>\n", href, NavLabel(slug))
	}
	return fmt.Sprintf(`export default function Header() {
  return (
    <header>
      <div className="brand">%s</div>
      <nav>
%s      </nav>
    </header>
  );
}
`, req.CompanyName, links.String())
}

func footerComponent(req model.ProvisioningRequest) string {
	contact := strings.Join(req.PreferredContactMethod, ", ")
	return fmt.Sprintf(`export default function Footer() {
  return (
    <footer>
      <p>Contact us: <a href="mailto:%s">%s</a></p>
      <p>Preferred contact: %s</p>
      <p>&copy; {new Date().getFullYear()} %s. All rights reserved.</p>
    </footer>
  );
}
`, req.OwnerEmail, req.OwnerEmail, contact, req.CompanyName)
}

func globalsCSS(colors BrandColors) string {
	return fmt.Sprintf(`:root {
  --color-primary: %s;
  --color-secondary: %s;
  --color-accent: %s;
}

* {
  box-sizing: border-box;
  margin: 0;
  padding: 0;
}

body {
  font-family: -apple-system, 'Segoe UI', Roboto, sans-serif;
  color: #1f2937;
}

header {
  display: flex;
  justify-content: space-between;
  align-items: center;
  padding: 1rem 2rem;
  background: var(--color-primary);
  color: #fff;
}

header nav a {
  color: #fff;
  margin-left: 1rem;
  text-decoration: none;
}

.hero {
  padding: 4rem 2rem;
  background: var(--color-secondary);
  color: #fff;
  text-align: center;
}

.card .price {
  color: var(--color-accent);
  font-weight: 700;
}

footer {
  padding: 2rem;
  background: #111827;
  color: #9ca3af;
}
`, colors.Primary, colors.Secondary, colors.Accent)
}
