package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterStatic serves a minimal inline demo page at "/".
func RegisterStatic(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, indexHTML)
	})
}

const indexHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8">
  <title>hufflink</title>
  <style>
    body { font-family: sans-serif; max-width: 40rem; margin: 3rem auto; }
    input { width: 100%; padding: .5rem; margin: .25rem 0 .75rem; }
    pre { background: #f4f4f4; padding: 1rem; white-space: pre-wrap; word-break: break-all; }
  </style>
</head>
<body>
  <h1>hufflink</h1>
  <p>Shorten a URL; the short code is also returned in its Huffman-compressed form.</p>

  <label>Long URL</label>
  <input id="url" placeholder="https://example.com/very/long/path">
  <button onclick="shorten()">Shorten</button>

  <label>Compressed code</label>
  <input id="code" placeholder="paste a compressed code">
  <button onclick="expand()">Expand</button>

  <pre id="out"></pre>

  <script>
    const out = document.getElementById('out');
    async function shorten() {
      const res = await fetch('/api/shorten', {
        method: 'POST',
        headers: {'Content-Type': 'application/json'},
        body: JSON.stringify({url: document.getElementById('url').value})
      });
      out.textContent = JSON.stringify(await res.json(), null, 2);
    }
    async function expand() {
      const code = encodeURIComponent(document.getElementById('code').value);
      const res = await fetch('/api/expand?code=' + code);
      out.textContent = JSON.stringify(await res.json(), null, 2);
    }
  </script>
</body>
</html>`
