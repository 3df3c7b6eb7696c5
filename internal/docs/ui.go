package docs

import "fmt"

// UI renders the documentation viewer page. The page loads the hosted
// Swagger UI bundle and points it at specURL.
func UI(title, specURL string) []byte {
	page := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>%s</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = function () {
      window.ui = SwaggerUIBundle({
        url: %q,
        dom_id: "#swagger-ui",
      });
    };
  </script>
</body>
</html>
`, title, specURL)
	return []byte(page)
}
